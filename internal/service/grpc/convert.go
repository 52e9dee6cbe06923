package grpcsvc

import (
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

func formatMoney(amount decimal.Decimal) string {
	return domain.RoundMoney(amount).StringFixed(2)
}

func toProtoCartLine(line domain.CartLine) *storefrontv1.CartItem {
	return &storefrontv1.CartItem{
		Id:        line.ID,
		ProductId: line.ProductID,
		Quantity:  line.Quantity,
		Size:      line.Size,
		Color:     line.Color,
	}
}

func toProtoCartItem(view domain.CartItemView) *storefrontv1.CartItem {
	item := toProtoCartLine(view.Line)
	item.ProductName = view.Product.Name
	item.ProductImage = view.Product.Image
	item.UnitPrice = view.UnitPrice.StringFixed(2)
	item.LineTotal = formatMoney(view.UnitPrice.Mul(decimal.NewFromInt32(view.Line.Quantity)))
	return item
}

// cartSubtotal округляет сумму корзины один раз, как и итог заказа.
func cartSubtotal(views []domain.CartItemView) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range views {
		sum = sum.Add(v.UnitPrice.Mul(decimal.NewFromInt32(v.Line.Quantity)))
	}
	return domain.RoundMoney(sum)
}

func toProtoOrder(order domain.Order) *storefrontv1.Order {
	items := make([]*storefrontv1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &storefrontv1.OrderItem{
			Id:           item.ID,
			ProductId:    item.Product.ID,
			ProductName:  item.Product.Name,
			ProductImage: item.Product.Image,
			Quantity:     item.Quantity,
			Price:        item.Price.StringFixed(2),
			Size:         item.Size,
			Color:        item.Color,
		})
	}

	addr := order.ShippingAddress
	return &storefrontv1.Order{
		Id:     order.ID,
		UserId: order.UserID,
		Total:  formatMoney(order.Total),
		Status: string(order.Status),
		ShippingAddress: &storefrontv1.ShippingAddress{
			FirstName:  addr.FirstName,
			LastName:   addr.LastName,
			Address:    addr.Address,
			City:       addr.City,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
			Phone:      addr.Phone,
		},
		PaymentMethod: order.PaymentMethod,
		Items:         items,
		CreatedAtUnix: order.CreatedAt.Unix(),
		UpdatedAtUnix: order.UpdatedAt.Unix(),
	}
}

func toProtoOrders(orders []domain.Order) []*storefrontv1.Order {
	out := make([]*storefrontv1.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toProtoOrder(o))
	}
	return out
}

func fromProtoAddress(addr *storefrontv1.ShippingAddress) domain.ShippingAddress {
	return domain.ShippingAddress{
		FirstName:  addr.GetFirstName(),
		LastName:   addr.GetLastName(),
		Address:    addr.GetAddress(),
		City:       addr.GetCity(),
		PostalCode: addr.GetPostalCode(),
		Country:    addr.GetCountry(),
		Phone:      addr.GetPhone(),
	}
}

func toProtoTimeline(events []domain.TimelineEvent) []*storefrontv1.TimelineEvent {
	out := make([]*storefrontv1.TimelineEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, &storefrontv1.TimelineEvent{
			Type:     ev.Type,
			Reason:   ev.Reason,
			UnixTime: ev.Occurred.Unix(),
		})
	}
	return out
}
