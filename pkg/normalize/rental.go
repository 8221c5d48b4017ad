package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"farmconnect/entities"
	"farmconnect/pkg/status"
)

// BackendAvailabilityDays is the lead time quoted for every backend rate card.
const BackendAvailabilityDays = 2

var spaceRX = regexp.MustCompile(`\s+`)

func slug(title string) string {
	return spaceRX.ReplaceAllString(strings.ToLower(title), "_")
}

// RateCards maps backend rate cards onto catalog items priced in rupees.
func RateCards(raw any) []entities.ServiceCatalogItem {
	list := List(raw, "rate_cards", "rental_rate_cards")
	out := make([]entities.ServiceCatalogItem, 0, len(list))
	for _, item := range list {
		c := AsObject(item)
		title := c.StringOr("Service", "service_name", "name", "title")
		price, ok := c.Number("price", "service_price", "rate", "amount")
		if !ok {
			price = 0
		}
		out = append(out, entities.ServiceCatalogItem{
			Key:                c.StringOr(slug(title), "service_key", "key", "id"),
			Title:              title,
			Description:        c.StringOr("", "description"),
			PriceLabel:         "₹" + strconv.FormatFloat(price, 'f', -1, 64),
			PriceValue:         price,
			DaysUntilAvailable: BackendAvailabilityDays,
		})
	}
	return out
}

// isoMillis matches the wire format the mobile client used for timestamps.
const isoMillis = "2006-01-02T15:04:05.000Z"

// RentalRequests maps the farmer's rental request list. now stands in for
// missing request dates and seeds fallback ids. Timelines are attached by
// the caller.
func RentalRequests(raw any, now time.Time) []entities.ServiceRequest {
	// only the wrapped form is accepted here
	list, _ := AsObject(raw)["farmer_rental_requests"].([]any)
	out := make([]entities.ServiceRequest, 0, len(list))
	for i, item := range list {
		r0 := AsObject(item)
		req := r0.Object("request_details", "request")

		desc := "Area: " + req.StringOr(entities.Dash, "area")
		if req.Truthy("farmer_name") {
			name, _ := req.String("farmer_name")
			desc += " • Farmer: " + name
		}
		out = append(out, entities.ServiceRequest{
			ID:            r0.StringOr(fmt.Sprintf("%d-%d", now.UnixMilli(), i), "rental_id", "id"),
			RequestID:     req.StringOr(r0.StringOr(fmt.Sprintf("REQ-%d", i+1), "request_id"), "request_id"),
			Title:         r0.StringOr("Service Request", "service_name", "service_title"),
			Category:      "Equipment",
			RequestedDate: req.StringOr(now.UTC().Format(isoMillis), "requested_date"),
			Priority:      "Medium",
			Status:        status.Service(req.StringOr("", "status")),
			Description:   desc,
		})
	}
	return out
}

// RequestID pulls the id a create call answered with.
func RequestID(raw any) (string, bool) {
	return AsObject(raw).String("request_id", "id")
}

// LoginResult is the login payload reduced to what the session needs.
type LoginResult struct {
	Success  bool
	FarmerID string
	Message  string
}

func Login(raw any) LoginResult {
	o := AsObject(raw)
	res := LoginResult{Success: o.Truthy("success")}
	res.FarmerID = strings.TrimSpace(o.StringOr("", "farmer_id"))
	res.Message = o.StringOr("", "message", "detail")
	return res
}
