package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/singleflight"

	"siyomart/internal/cache"
	"siyomart/internal/models"
	"siyomart/internal/repository"
)

// CartService implementa el agregado carrito. Los totales siempre se
// recalculan por reducción completa tras cada mutación; los chequeos de
// stock releen el stock vivo pero no lo reservan (la reserva real pasa
// en el checkout).
type CartService struct {
	carts    CartStore
	products ProductStore
	cache    cache.CartCache
	sfg      singleflight.Group // evita estampida de misses por usuario
}

func NewCartService(carts CartStore, products ProductStore, cartCache cache.CartCache) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		cache:    cartCache,
	}
}

// GetCart devuelve la vista poblada del carrito, o el centinela vacío
// si el usuario no tiene carrito. Nunca es error no tener carrito.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.CartView, error) {
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		view, errCache := s.cache.Get(ctx, userID)
		if errCache == nil {
			return view, nil
		}
		if !errors.Is(errCache, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", errCache)
		}

		cart, errGet := s.carts.Get(ctx, userID)
		if errors.Is(errGet, repository.ErrCartNotFound) {
			return models.EmptyCartView(), nil
		}
		if errGet != nil {
			return nil, errGet
		}

		view, errBuild := s.buildView(ctx, cart)
		if errBuild != nil {
			return nil, errBuild
		}

		if errSet := s.cache.Set(ctx, userID, view); errSet != nil {
			log.Printf("cache set error: %v", errSet)
		}
		return view, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.CartView), nil
}

// AddItem agrega o acumula una línea. Si el producto ya está en el
// carrito, la línea entera se reprecia al precio vivo del producto
// (comportamiento heredado, ver DESIGN.md).
func (s *CartService) AddItem(ctx context.Context, userID string, productID primitive.ObjectID, quantity int64, options map[string]string) (*models.CartView, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidArgument)
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		// creación perezosa en el primer add
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	} else if err != nil {
		return nil, err
	}

	idx := cart.FindProduct(productID)
	cumulative := quantity
	if idx >= 0 {
		cumulative += cart.Items[idx].Quantity
	}
	if cumulative > product.Stock {
		return nil, repository.ErrInsufficientStock
	}

	if idx >= 0 {
		cart.Items[idx].Quantity = cumulative
		cart.Items[idx].UnitPrice = product.PriceCents
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ItemID:          primitive.NewObjectID(),
			ProductID:       productID,
			Quantity:        quantity,
			UnitPrice:       product.PriceCents,
			SelectedOptions: options,
			AddedAt:         time.Now(),
		})
	}

	return s.commit(ctx, cart)
}

// UpdateQuantity fija la cantidad de una línea y recalcula su subtotal
// con el precio actual del producto.
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, itemID primitive.ObjectID, quantity int64) (*models.CartView, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidArgument)
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItem(itemID)
	if idx < 0 {
		return nil, repository.ErrItemNotFound
	}

	product, err := s.products.FindByID(ctx, cart.Items[idx].ProductID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, repository.ErrInsufficientStock
	}

	cart.Items[idx].Quantity = quantity
	cart.Items[idx].UnitPrice = product.PriceCents

	return s.commit(ctx, cart)
}

// RemoveItem saca una línea del carrito. Repetir la llamada con el
// mismo itemId devuelve not found y deja el carrito intacto.
func (s *CartService) RemoveItem(ctx context.Context, userID string, itemID primitive.ObjectID) (*models.CartView, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItem(itemID)
	if idx < 0 {
		return nil, repository.ErrItemNotFound
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	return s.commit(ctx, cart)
}

// Clear borra el documento del carrito entero.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if err := s.carts.Delete(ctx, userID); err != nil {
		return err
	}
	s.invalidate(userID)
	return nil
}

// commit persiste el carrito con totales recalculados y devuelve la
// vista poblada.
func (s *CartService) commit(ctx context.Context, cart *models.Cart) (*models.CartView, error) {
	cart.Recompute()
	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	s.invalidate(cart.UserID)
	return s.buildView(ctx, cart)
}

// buildView junta nombre, imágenes, stock y precio vivos del producto
// en cada línea.
func (s *CartService) buildView(ctx context.Context, cart *models.Cart) (*models.CartView, error) {
	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	byID := map[primitive.ObjectID]*models.Product{}
	if len(ids) > 0 {
		var err error
		byID, err = s.products.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	view := &models.CartView{
		Items:     make([]models.CartViewItem, 0, len(cart.Items)),
		CartTotal: cart.CartTotal,
		ItemCount: cart.ItemCount,
	}
	for _, item := range cart.Items {
		viewItem := models.CartViewItem{CartItem: item}
		if p, ok := byID[item.ProductID]; ok {
			viewItem.Name = p.Name
			viewItem.Images = p.Images
			viewItem.Stock = p.Stock
			viewItem.CurrentPrice = p.PriceCents
		}
		view.Items = append(view.Items, viewItem)
	}
	return view, nil
}

func (s *CartService) invalidate(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheInvalidateTimeout)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
