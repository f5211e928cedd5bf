package service

import (
	"context"
	"testing"
	"time"

	"velour/internal/model"
	"velour/internal/referral"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart(t *testing.T, discounts referral.Source) CartService {
	t.Helper()

	if discounts == nil {
		discounts = referral.NewStaticSource(nil)
	}
	return NewCartService(newTestCatalog(), discounts, zerolog.Nop())
}

func TestCartService_AddItem(t *testing.T) {
	svc := newCart(t, nil)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "s1", &model.AddItemRequest{
		ProductID: "dress", Color: "Noir", Size: "M", Quantity: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "dress", item.Product.ID)
	assert.Equal(t, "Noir", item.SelectedColor)
	assert.Equal(t, "M", item.SelectedSize)
	assert.Equal(t, 2, item.Quantity)
	assert.NotEqual(t, uuid.Nil, item.ID)
}

func TestCartService_AddItem_MergesMatchingSelection(t *testing.T) {
	svc := newCart(t, nil)
	ctx := context.Background()

	first, err := svc.AddItem(ctx, "s1", &model.AddItemRequest{ProductID: "dress", Color: "Noir", Size: "M", Quantity: 1})
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, "s1", &model.AddItemRequest{ProductID: "dress", Color: "Noir", Size: "M", Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "matching selections merge into one line")
	assert.Equal(t, 3, second.Quantity)

	items := svc.Items(ctx, "s1")
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartService_AddItem_Validation(t *testing.T) {
	svc := newCart(t, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *model.AddItemRequest
		wantErr error
	}{
		{
			name:    "nil request",
			req:     nil,
			wantErr: model.ErrProductNotFound,
		},
		{
			name:    "unknown product",
			req:     &model.AddItemRequest{ProductID: "missing", Color: "Noir"},
			wantErr: model.ErrProductNotFound,
		},
		{
			name:    "colour not offered",
			req:     &model.AddItemRequest{ProductID: "dress", Color: "Scarlet", Size: "M"},
			wantErr: model.ErrInvalidOption,
		},
		{
			name:    "size not offered",
			req:     &model.AddItemRequest{ProductID: "dress", Color: "Noir", Size: "XXL"},
			wantErr: model.ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, "s1", tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, svc.Items(ctx, "s1"), "rejected requests must not touch the cart")
}

func TestCartService_AddItem_ClampsQuantity(t *testing.T) {
	svc := newCart(t, nil)

	item, err := svc.AddItem(context.Background(), "s1", &model.AddItemRequest{
		ProductID: "dress", Color: "Noir", Size: "S", Quantity: -4,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	svc := newCart(t, nil)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "s1", &model.AddItemRequest{ProductID: "dress", Color: "Noir", Size: "S", Quantity: 1})
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(ctx, "s1", item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	clamped, err := svc.UpdateQuantity(ctx, "s1", item.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, clamped.Quantity, "quantity floors at one; removal is explicit")

	_, err = svc.UpdateQuantity(ctx, "s1", uuid.New(), 2)
	assert.ErrorIs(t, err, model.ErrLineNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	svc := newCart(t, nil)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "s1", &model.AddItemRequest{ProductID: "dress", Color: "Noir", Size: "S", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, "s1", item.ID))
	assert.Empty(t, svc.Items(ctx, "s1"))

	assert.ErrorIs(t, svc.RemoveItem(ctx, "s1", item.ID), model.ErrLineNotFound)
}

func TestCartService_Clear(t *testing.T) {
	svc := newCart(t, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &model.AddItemRequest{ProductID: "dress", Color: "Noir", Size: "S", Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", &model.AddItemRequest{ProductID: "coat", Color: "Camel", Size: "M", Quantity: 1})
	require.NoError(t, err)

	svc.Clear(ctx, "s1")
	assert.Empty(t, svc.Items(ctx, "s1"))
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	svc := newCart(t, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &model.AddItemRequest{ProductID: "dress", Color: "Noir", Size: "S", Quantity: 1})
	require.NoError(t, err)

	assert.Len(t, svc.Items(ctx, "s1"), 1)
	assert.Empty(t, svc.Items(ctx, "s2"))
}

func TestCartService_Summary_DefaultPartnerIsCheapest(t *testing.T) {
	svc := newCart(t, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &model.AddItemRequest{ProductID: "scarf", Color: "Emerald", Quantity: 1})
	require.NoError(t, err)

	summary, partner, err := svc.Summary(ctx, "s1", "")
	require.NoError(t, err)

	assert.Equal(t, "standard", partner.ID)
	// 8% tax on the 340.00 subtotal, plus the 8.00 delivery fee.
	assert.Equal(t, "340.00", summary.Subtotal.String())
	assert.Equal(t, "8.00", summary.DeliveryFee.String())
	assert.Equal(t, "27.20", summary.Tax.String())
	assert.Equal(t, "375.20", summary.Total.String())
}

func TestCartService_Summary_UnknownPartner(t *testing.T) {
	svc := newCart(t, nil)

	_, _, err := svc.Summary(context.Background(), "s1", "carrier-pigeon")
	assert.ErrorIs(t, err, model.ErrPartnerNotFound)
}

func TestCartService_Summary_AppliesReferralDiscount(t *testing.T) {
	source := referral.NewStaticSource(map[string][]model.ReferralDiscount{
		"s1": {
			{ID: "ref-1", Type: model.DiscountTypeReferrer, Percentage: 20, Active: true, CreatedAt: time.Now()},
		},
	})
	svc := newCart(t, source)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &model.AddItemRequest{ProductID: "scarf", Color: "Emerald", Quantity: 2})
	require.NoError(t, err)

	summary, partner, err := svc.Summary(ctx, "s1", "dhl-express")
	require.NoError(t, err)

	assert.Equal(t, "DHL Express", partner.Name)
	require.Len(t, summary.Lines, 1)
	require.NotNil(t, summary.Lines[0].AppliedDiscount)
	assert.Equal(t, "ref-1", summary.Lines[0].AppliedDiscount.ID)

	// 340.00 at 20% off is 272.00 a unit; 8% tax on the 544.00 subtotal
	// plus the 18.50 delivery fee.
	assert.Equal(t, "272.00", summary.Lines[0].EffectivePrice.String())
	assert.Equal(t, "544.00", summary.Subtotal.String())
	assert.Equal(t, "43.52", summary.Tax.String())
	assert.Equal(t, "606.02", summary.Total.String())
}

func TestCartService_Summary_EmptyCart(t *testing.T) {
	svc := newCart(t, nil)

	summary, partner, err := svc.Summary(context.Background(), "s1", "")
	require.NoError(t, err)

	assert.Equal(t, "standard", partner.ID)
	assert.Empty(t, summary.Lines)
	assert.Equal(t, "0.00", summary.Subtotal.String())
}
