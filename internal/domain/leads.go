package domain

// Lead is an address record awaiting geocoding. Fields other than ID may be
// empty; the address string is assembled from whatever is present.
type Lead struct {
	ID      int64  `json:"id"`
	Name    string `json:"lead_name"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	State   string `json:"state"`
	City    string `json:"city"`
	Stage   string `json:"stage"`
}

// Geolocation is a resolved coordinate pair for a lead.
type Geolocation struct {
	LeadID           int64   `json:"lead_id"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
	PlaceID          string  `json:"place_id,omitempty"`
}
