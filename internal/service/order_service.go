package service

import (
	"context"
	"math"
	"time"

	"meal-pickup/internal/metrics"
	"meal-pickup/internal/model"
	"meal-pickup/internal/repository"
	"meal-pickup/internal/validate"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	queue  *repository.WriteQueue
	now    func() time.Time
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(queue *repository.WriteQueue, logger zerolog.Logger) OrderService {
	return &orderService{
		queue:  queue,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// orderInput is an order request after sanitizing; ok is false if any required field was unusable.
type orderInput struct {
	customerName string
	phone        string
	pickupDate   string
	note         string
	quantity     int
	ok           bool
}

func cleanOrderRequest(req *model.OrderRequest) orderInput {
	if req == nil {
		return orderInput{}
	}

	in := orderInput{
		customerName: validate.Text(req.CustomerName, 80),
		phone:        validate.Text(req.Phone, 40),
		note:         validate.Text(req.Note, 300),
	}

	date, dateOK := validate.Date(req.PickupDate)
	quantity, quantityOK := validate.Quantity(req.Quantity)
	in.pickupDate = date
	in.quantity = quantity
	in.ok = in.customerName != "" && in.phone != "" && dateOK && quantityOK
	return in
}

// CreateOrder places an order for today's meal. The meal must be available; its name and price are
// copied onto the order so later menu changes do not alter it.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	in := cleanOrderRequest(req)

	order, err := repository.Submit(ctx, s.queue, func(doc *model.Document) (model.Order, error) {
		meal := doc.TodaysMeal
		if !meal.Available {
			return model.Order{}, model.ErrMealUnavailable
		}

		unitPrice, priceOK := validate.PriceValue(meal.Price)
		if !in.ok || !priceOK {
			return model.Order{}, model.ErrInvalidOrder
		}

		total := validate.Round2(float64(in.quantity) * unitPrice)
		if math.IsInf(total, 0) {
			return model.Order{}, model.ErrInvalidOrder
		}

		order := model.Order{
			ID:           newID(func(id string) bool { return doc.FindOrder(id) >= 0 }),
			CustomerName: in.customerName,
			Phone:        in.phone,
			Quantity:     in.quantity,
			PickupDate:   in.pickupDate,
			PickupTime:   model.DefaultPickupTime,
			Note:         in.note,
			MealName:     meal.Name,
			UnitPrice:    unitPrice,
			Total:        total,
			Status:       model.StatusOrdered,
			Paid:         false,
			PaymentMode:  model.PaymentMode,
			CreatedAt:    s.now(),
		}

		// Most recent first.
		doc.Orders = append([]model.Order{order}, doc.Orders...)
		return order, nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("order rejected")
		return nil, err
	}

	metrics.RecordOrderPlaced()

	s.logger.Info().
		Str("order_id", order.ID).
		Int("quantity", order.Quantity).
		Float64("total", order.Total).
		Str("pickup_date", order.PickupDate).
		Msg("order created successfully")

	return &order, nil
}

// UpdateOrder applies a status change and/or payment flag to the order with id.
// An unrecognized status is ignored and the order keeps its current status.
func (s *orderService) UpdateOrder(ctx context.Context, id string, req *model.OrderUpdateRequest) (*model.Order, error) {
	if req == nil {
		req = &model.OrderUpdateRequest{}
	}
	status := validate.Text(req.Status, 30)

	var applied bool
	order, err := repository.Submit(ctx, s.queue, func(doc *model.Document) (model.Order, error) {
		idx := doc.FindOrder(id)
		if idx < 0 {
			return model.Order{}, model.ErrOrderNotFound
		}

		order := &doc.Orders[idx]
		now := s.now()

		applied = false
		if status != "" {
			applied = order.ApplyStatus(status, now)
		}
		if req.Paid.Set {
			order.SetPaid(req.Paid.Value, now)
		}
		return *order, nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("order_id", id).Msg("failed to update order")
		return nil, err
	}

	if status != "" && !applied {
		s.logger.Warn().
			Str("order_id", id).
			Str("status", status).
			Msg("ignoring unrecognized order status")
	}
	if applied {
		metrics.RecordOrderStatus(string(order.Status))
	}

	s.logger.Info().
		Str("order_id", id).
		Str("status", string(order.Status)).
		Bool("paid", order.Paid).
		Msg("order updated")

	return &order, nil
}
