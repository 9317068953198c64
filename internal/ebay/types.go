package ebay

// Wire types for the Sell Inventory and Sell Account APIs. Only the fields
// this client reads or writes are modeled.

type locationPayload struct {
	Location struct {
		Address locationAddress `json:"address"`
	} `json:"location"`
	LocationTypes          []string `json:"locationTypes"`
	Name                   string   `json:"name"`
	MerchantLocationStatus string   `json:"merchantLocationStatus"`
}

type locationAddress struct {
	AddressLine1    string `json:"addressLine1"`
	City            string `json:"city"`
	StateOrProvince string `json:"stateOrProvince"`
	PostalCode      string `json:"postalCode"`
	Country         string `json:"country"`
}

type inventoryItemPayload struct {
	Availability struct {
		ShipToLocationAvailability struct {
			Quantity int `json:"quantity"`
		} `json:"shipToLocationAvailability"`
	} `json:"availability"`
	Condition string               `json:"condition"`
	Product   inventoryItemProduct `json:"product"`
}

type inventoryItemProduct struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Aspects     map[string][]string `json:"aspects,omitempty"`
	ImageURLs   []string            `json:"imageUrls"`
}

type offerPayload struct {
	SKU                 string          `json:"sku"`
	MarketplaceID       string          `json:"marketplaceId"`
	Format              string          `json:"format"`
	AvailableQuantity   int             `json:"availableQuantity"`
	CategoryID          string          `json:"categoryId"`
	ListingDescription  string          `json:"listingDescription"`
	ListingPolicies     listingPolicies `json:"listingPolicies"`
	MerchantLocationKey string          `json:"merchantLocationKey"`
	PricingSummary      pricingSummary  `json:"pricingSummary"`
}

type listingPolicies struct {
	FulfillmentPolicyID string `json:"fulfillmentPolicyId,omitempty"`
	PaymentPolicyID     string `json:"paymentPolicyId,omitempty"`
	ReturnPolicyID      string `json:"returnPolicyId,omitempty"`
}

type pricingSummary struct {
	Price priceValue `json:"price"`
}

type priceValue struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type offerResponse struct {
	OfferID string `json:"offerId"`
}

type publishResponse struct {
	ListingID string `json:"listingId"`
}

type fulfillmentPoliciesResponse struct {
	FulfillmentPolicies []struct {
		FulfillmentPolicyID string `json:"fulfillmentPolicyId"`
	} `json:"fulfillmentPolicies"`
}

type paymentPoliciesResponse struct {
	PaymentPolicies []struct {
		PaymentPolicyID string `json:"paymentPolicyId"`
	} `json:"paymentPolicies"`
}

type returnPoliciesResponse struct {
	ReturnPolicies []struct {
		ReturnPolicyID string `json:"returnPolicyId"`
	} `json:"returnPolicies"`
}

type apiErrorResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}
