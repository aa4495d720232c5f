package services

import (
	"crypto/rand"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/resto-admin/models"
)

// PaymentInfo carries the payment details submitted on confirmation.
type PaymentInfo struct {
	Method          string
	CashInChange    *float64
	DebitProvider   string
	DebitCardNumber string
}

// ConfirmOrderInput is the requested transition for an order.
type ConfirmOrderInput struct {
	Status  string
	Menus   []Selection
	Payment *PaymentInfo
}

// CreateOrderInput holds the selections for a new draft order.
type CreateOrderInput struct {
	Menus []Selection
}

// OrderService owns the order lifecycle: draft creation and the
// confirmation that moves an UNPAID order to PAID or REJECTED.
type OrderService struct {
	db      *gorm.DB
	pricing *PricingEngine
}

func NewOrderService(db *gorm.DB, pricing *PricingEngine) *OrderService {
	return &OrderService{db: db, pricing: pricing}
}

// Create inserts a new UNPAID order with one transaction line per
// selection, priced against the current catalog.
func (s *OrderService) Create(in CreateOrderInput) (*models.Order, error) {
	if len(in.Menus) == 0 {
		return nil, &ValidationError{Field: "menus", Message: "at least one menu is required"}
	}

	code, err := generateOrderCode(6)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		catalog, err := fetchCatalog(tx, in.Menus)
		if err != nil {
			return err
		}

		lines, err := s.pricing.ComputeLineTotals(in.Menus, catalog)
		if err != nil {
			return err
		}
		totalItems, totalPrice := Aggregate(lines)

		now := time.Now()
		order = models.Order{
			Code:            code,
			Status:          models.OrderStatusUnpaid,
			TotalItems:      totalItems,
			TotalPrice:      totalPrice,
			TaxPercent:      s.pricing.TaxRate,
			TotalFinalPrice: s.pricing.ApplyTax(totalPrice),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		records := make([]models.Transaction, 0, len(lines))
		for _, line := range lines {
			records = append(records, models.Transaction{
				OrderID:    order.ID,
				MenuID:     line.MenuID,
				TotalItem:  line.Qty,
				TotalPrice: line.LineTotal,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Confirm moves the order to the requested terminal status.
//
// REJECTED skips all payment and line processing, even when the request
// carries a payment or menus payload. PAID validates the payment details
// per method, resets every payment column before writing the applicable
// ones, and, when menus are supplied, replaces the matching lines and
// refreshes the stored totals. All mutation happens in one transaction;
// a missing menu aborts the whole call with nothing changed.
func (s *OrderService) Confirm(orderID uint, in ConfirmOrderInput) (string, error) {
	if in.Status != models.OrderStatusPaid && in.Status != models.OrderStatusRejected {
		return "", &ValidationError{Field: "status", Message: "status must be PAID or REJECTED"}
	}

	patch := map[string]interface{}{
		"status": in.Status,
	}

	if in.Status == models.OrderStatusPaid {
		// Reset every payment column so details from an earlier
		// confirmation attempt cannot leak through.
		patch["payment_method"] = nil
		patch["cash_in_change"] = nil
		patch["debit_provider"] = nil
		patch["debit_card_number"] = nil

		if in.Payment != nil {
			if err := applyPayment(patch, in.Payment); err != nil {
				return "", err
			}
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "order not found"}
			}
			return err
		}

		if in.Status == models.OrderStatusPaid && len(in.Menus) > 0 {
			if err := s.replaceLines(tx, order.ID, in.Menus, patch); err != nil {
				return err
			}
		}

		// Guard against a concurrent confirmation: the update only lands
		// when the status read above is still current.
		patch["updated_at"] = time.Now()
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Updates(patch)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &ConflictError{Message: "order was modified by another request"}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return in.Status, nil
}

func applyPayment(patch map[string]interface{}, payment *PaymentInfo) error {
	switch payment.Method {
	case models.PaymentMethodCash:
		if payment.CashInChange == nil {
			return &ValidationError{Field: "cashInChange", Message: "cash in change is not provided for cash payment"}
		}
		patch["payment_method"] = models.PaymentMethodCash
		patch["cash_in_change"] = *payment.CashInChange
	case models.PaymentMethodDebit:
		if payment.DebitProvider == "" {
			return &ValidationError{Field: "debitProvider", Message: "provider is not provided for debit payment"}
		}
		if payment.DebitCardNumber == "" {
			return &ValidationError{Field: "debitCardNumber", Message: "card number is not provided for debit payment"}
		}
		patch["payment_method"] = models.PaymentMethodDebit
		patch["debit_provider"] = payment.DebitProvider
		patch["debit_card_number"] = payment.DebitCardNumber
	case models.PaymentMethodQris:
		// QRIS stores the method alone, no extra fields.
		patch["payment_method"] = models.PaymentMethodQris
	default:
		return &ValidationError{Field: "payment.method", Message: "payment method must be CASH, DEBIT or QRIS"}
	}
	return nil
}

// replaceLines swaps the order's lines for the selected menus and writes
// refreshed totals into patch. Pricing runs before any delete so a
// missing menu aborts with the existing lines intact.
func (s *OrderService) replaceLines(tx *gorm.DB, orderID uint, selections []Selection, patch map[string]interface{}) error {
	catalog, err := fetchCatalog(tx, selections)
	if err != nil {
		return err
	}

	lines, err := s.pricing.ComputeLineTotals(selections, catalog)
	if err != nil {
		return err
	}

	menuIDs := make([]uint, 0, len(selections))
	for _, sel := range selections {
		menuIDs = append(menuIDs, sel.MenuID)
	}
	if err := tx.Where("order_id = ? AND menu_id IN ?", orderID, menuIDs).
		Delete(&models.Transaction{}).Error; err != nil {
		return err
	}

	now := time.Now()
	records := make([]models.Transaction, 0, len(lines))
	for _, line := range lines {
		records = append(records, models.Transaction{
			OrderID:    orderID,
			MenuID:     line.MenuID,
			TotalItem:  line.Qty,
			TotalPrice: line.LineTotal,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	if err := tx.Create(&records).Error; err != nil {
		return err
	}

	// Totals are recomputed from the order's full line set, not just the
	// touched menus, so untouched lines keep contributing.
	var current []models.Transaction
	if err := tx.Where("order_id = ?", orderID).Find(&current).Error; err != nil {
		return err
	}
	totalItems := 0
	totalPrice := 0.0
	for _, trx := range current {
		totalItems += trx.TotalItem
		totalPrice += trx.TotalPrice
	}

	patch["total_items"] = totalItems
	patch["total_price"] = totalPrice
	patch["tax_percent"] = s.pricing.TaxRate
	patch["total_final_price"] = s.pricing.ApplyTax(totalPrice)
	return nil
}

func fetchCatalog(tx *gorm.DB, selections []Selection) (map[uint]models.Menu, error) {
	menuIDs := make([]uint, 0, len(selections))
	for _, sel := range selections {
		menuIDs = append(menuIDs, sel.MenuID)
	}

	var menus []models.Menu
	if err := tx.Where("id IN ?", menuIDs).Find(&menus).Error; err != nil {
		return nil, err
	}

	catalog := make(map[uint]models.Menu, len(menus))
	for _, menu := range menus {
		catalog[menu.ID] = menu
	}
	return catalog, nil
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ123456789"

func generateOrderCode(length int) (string, error) {
	// Bytes past the largest multiple of the alphabet size are rejected
	// so every character is equally likely.
	limit := byte(256 - 256%len(codeAlphabet))
	buf := make([]byte, 0, length)
	raw := make([]byte, length)
	for len(buf) < length {
		if _, err := rand.Read(raw); err != nil {
			return "", err
		}
		for _, b := range raw {
			if b >= limit || len(buf) == length {
				continue
			}
			buf = append(buf, codeAlphabet[int(b)%len(codeAlphabet)])
		}
	}
	return string(buf), nil
}
