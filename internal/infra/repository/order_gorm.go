package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/fitreni/coach-scheduler/internal/domain/order"
	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) GetStudioByID(
	ctx context.Context,
	id uint,
) (*models.Studio, error) {

	var shop models.Studio
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *OrderGormRepository) GetProductsByIDs(
	ctx context.Context,
	studioID uint,
	ids []uint,
) ([]models.Product, error) {

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("studio_id = ? AND id IN ?", studioID, ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *OrderGormRepository) GetShippingMethod(
	ctx context.Context,
	studioID uint,
	id uint,
) (*models.ShippingMethod, error) {

	var method models.ShippingMethod
	if err := r.db.WithContext(ctx).
		Where("id = ? AND studio_id = ? AND active = true", id, studioID).
		First(&method).Error; err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *OrderGormRepository) GetOrCreateClient(
	ctx context.Context,
	studioID uint,
	name string,
	phone string,
	email string,
	locale string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("studio_id = ? AND phone = ?", studioID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		StudioID: studioID,
		Name:     name,
		Phone:    phone,
		Email:    email,
		Locale:   locale,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderGormRepository) GetOrderByPaymentReference(
	ctx context.Context,
	paymentRef string,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("payment_reference = ?", paymentRef).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) GetOrderForStudio(
	ctx context.Context,
	orderID uint,
	studioID uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND studio_id = ?", orderID, studioID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) UpdateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OrderGormRepository) ListOrders(
	ctx context.Context,
	studioID uint,
	status string,
) ([]models.Order, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items").
		Preload("Items.Product").
		Where("studio_id = ?", studioID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) DecrementStock(
	ctx context.Context,
	productID uint,
	qty int,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND (stock < 0 OR stock >= ?)", productID, qty).
		Update("stock", gorm.Expr("CASE WHEN stock < 0 THEN stock ELSE stock - ? END", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("out_of_stock")
	}
	return nil
}

func (r *OrderGormRepository) RestoreStock(
	ctx context.Context,
	productID uint,
	qty int,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= 0", productID).
		Update("stock", gorm.Expr("stock + ?", qty)).Error
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
