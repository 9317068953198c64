package publish

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sunraincyq/inventsync-app/internal/ebay"
	ebayMocks "github.com/sunraincyq/inventsync-app/internal/ebay/mocks"
	storeMocks "github.com/sunraincyq/inventsync-app/internal/store/mocks"
	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

func connectedConnection() *domain.MarketplaceConnection {
	return &domain.MarketplaceConnection{
		ID:          "conn-1",
		Marketplace: domain.MarketplaceEbay,
		Name:        "eBay Store",
		Status:      domain.ConnectionConnected,
		Credentials: domain.Credentials{AccessToken: "tok", Sandbox: true},
	}
}

func factoryFor(mc *ebayMocks.MockClient) ClientFactory {
	return func(domain.Credentials) ebay.Client { return mc }
}

func TestPublish_Success(t *testing.T) {
	t.Parallel()

	mc := ebayMocks.NewMockClient(t)
	mc.EXPECT().EnsureLocation(mock.Anything).Return(nil)
	mc.EXPECT().UpsertInventoryItem(mock.Anything, mock.Anything).Return(nil)
	mc.EXPECT().FetchPolicies(mock.Anything).Return(ebay.Policies{})
	mc.EXPECT().CreateOffer(mock.Anything, mock.Anything).Return("offer-42", nil)
	mc.EXPECT().PublishOffer(mock.Anything, "offer-42").Return("123456", nil)
	mc.EXPECT().ItemURL("123456").Return("https://www.ebay.com/itm/123456")

	var inserted *domain.Listing
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetProduct(mock.Anything, "p-1").Return(testProduct(), nil)
	ms.EXPECT().GetConnection(mock.Anything, domain.MarketplaceEbay).
		Return(connectedConnection(), nil)
	ms.EXPECT().InsertListing(mock.Anything, mock.Anything).
		Run(func(_ context.Context, l *domain.Listing) {
			inserted = l
		}).Return(nil)

	p := NewPublisher(ms, factoryFor(mc), quietLogger())
	listing, err := p.Publish(context.Background(), "p-1", "12345")
	require.NoError(t, err)

	assert.Equal(t, domain.ListingActive, listing.Status)
	assert.Equal(t, "123456", listing.ExternalID)
	assert.Equal(t, "offer-42", listing.OfferID)
	assert.Contains(t, listing.ListingURL, "123456")
	assert.Equal(t, "conn-1", listing.ConnectionID)
	assert.True(t, listing.ListingData.Success)
	assert.Same(t, listing, inserted)
}

func TestPublish_WorkflowFailureRecordsErrorListing(t *testing.T) {
	t.Parallel()

	mc := ebayMocks.NewMockClient(t)
	mc.EXPECT().EnsureLocation(mock.Anything).Return(nil)
	mc.EXPECT().UpsertInventoryItem(mock.Anything, mock.Anything).
		Return(errors.New("Invalid SKU format"))

	var inserted *domain.Listing
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetProduct(mock.Anything, "p-1").Return(testProduct(), nil)
	ms.EXPECT().GetConnection(mock.Anything, domain.MarketplaceEbay).
		Return(connectedConnection(), nil)
	ms.EXPECT().InsertListing(mock.Anything, mock.Anything).
		Run(func(_ context.Context, l *domain.Listing) {
			inserted = l
		}).Return(nil)

	p := NewPublisher(ms, factoryFor(mc), quietLogger())
	listing, err := p.Publish(context.Background(), "p-1", "12345")
	require.NoError(t, err)

	assert.Equal(t, domain.ListingError, listing.Status)
	assert.Equal(t, "Invalid SKU format", listing.ErrorMessage)
	assert.Equal(t, string(StateUpsertingInventory), listing.ListingData.FailedState)
	assert.False(t, listing.ListingData.Success)
	assert.NotNil(t, inserted)
}

func TestPublish_UnknownProduct(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetProduct(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	p := NewPublisher(ms, nil, quietLogger())
	_, err := p.Publish(context.Background(), "missing", "12345")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPublish_NotConnected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		conn *domain.MarketplaceConnection
		err  error
	}{
		{
			name: "no connection row",
			err:  domain.ErrNotFound,
		},
		{
			name: "connection marked disconnected",
			conn: &domain.MarketplaceConnection{
				Marketplace: domain.MarketplaceEbay,
				Status:      domain.ConnectionDisconnected,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().GetProduct(mock.Anything, "p-1").Return(testProduct(), nil)
			ms.EXPECT().GetConnection(mock.Anything, domain.MarketplaceEbay).
				Return(tt.conn, tt.err)

			p := NewPublisher(ms, nil, quietLogger())
			_, err := p.Publish(context.Background(), "p-1", "12345")
			assert.ErrorIs(t, err, domain.ErrNotConnected)
		})
	}
}

func TestPublish_InsertFailure(t *testing.T) {
	t.Parallel()

	mc := ebayMocks.NewMockClient(t)
	mc.EXPECT().EnsureLocation(mock.Anything).Return(nil)
	mc.EXPECT().UpsertInventoryItem(mock.Anything, mock.Anything).Return(nil)
	mc.EXPECT().FetchPolicies(mock.Anything).Return(ebay.Policies{})
	mc.EXPECT().CreateOffer(mock.Anything, mock.Anything).Return("offer-1", nil)
	mc.EXPECT().PublishOffer(mock.Anything, "offer-1").Return("111", nil)
	mc.EXPECT().ItemURL("111").Return("https://www.ebay.com/itm/111")

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetProduct(mock.Anything, "p-1").Return(testProduct(), nil)
	ms.EXPECT().GetConnection(mock.Anything, domain.MarketplaceEbay).
		Return(connectedConnection(), nil)
	ms.EXPECT().InsertListing(mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	p := NewPublisher(ms, factoryFor(mc), quietLogger())
	_, err := p.Publish(context.Background(), "p-1", "12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording listing")
}
