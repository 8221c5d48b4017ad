package probe

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	Login           = "login"
	Tasks           = "tasks"
	TaskStatus      = "task_status"
	FieldVisits     = "field_visits"
	CultivationPlan = "cultivation_plan"
	Profile         = "profile"
	FarmerDetails   = "farmer_details"
	RateCards       = "rate_cards"
	RentalCreate    = "rental_create"
	RentalRequests  = "rental_requests"
)

// Endpoints maps a logical resource to its ordered candidates.
type Endpoints map[string][]Candidate

func get(p string) Candidate  { return Candidate{Method: "GET", Path: p} }
func post(p string) Candidate { return Candidate{Method: "POST", Path: p} }

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Login:      {post("/farmer_managment/login")},
		Tasks:      {get("/admin_all_task/get_all_tasks?farmer_id={farmer_id}"), post("/admin_all_task/get_all_tasks")},
		TaskStatus: {post("/admin_all_task/update_task_status")},
		FieldVisits: {
			get("/field_visits/get_farmer_visits?farmer_id={farmer_id}"),
			post("/field_visits/get_farmer_visits"),
		},
		// backend spelling
		CultivationPlan: {get("/admin_cultivation/farmer_feild_visits/{farmer_id}")},
		Profile: {
			get("/farmer_managment/get_profile?farmer_id={farmer_id}"),
			post("/farmer_managment/get_profile"),
			get("/farmer_management/get_profile?farmer_id={farmer_id}"),
			post("/farmer_management/get_profile"),
		},
		FarmerDetails:  {get("/farmer_managment/farmer_details/{farmer_id}")},
		RateCards:      {get("/admin_rental/get_all_rental_rate_cards?farmer_id={farmer_id}"), post("/admin_rental/get_all_rental_rate_cards")},
		RentalCreate:   {post("/admin_rental/make_rental_request")},
		RentalRequests: {post("/admin_rental/get_farmer_rental_requests")},
	}
}

// First returns the first candidate of a resource, used by the write calls
// that are never probed.
func (e Endpoints) First(resource string) (Candidate, bool) {
	c := e[resource]
	if len(c) == 0 {
		return Candidate{}, false
	}
	return c[0], true
}

// LoadEndpoints reads a YAML override and merges it over the defaults. An
// empty path returns the defaults unchanged.
func LoadEndpoints(path string) (Endpoints, error) {
	eps := DefaultEndpoints()
	if path == "" {
		return eps, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return eps, fmt.Errorf("read endpoints: %w", err)
	}
	return eps.Merge(b)
}

// Merge applies a YAML document on top of e. Resources listed in the
// document replace their defaults wholesale.
func (e Endpoints) Merge(doc []byte) (Endpoints, error) {
	var over Endpoints
	if err := yaml.Unmarshal(doc, &over); err != nil {
		return e, fmt.Errorf("parse endpoints: %w", err)
	}
	out := Endpoints{}
	for k, v := range e {
		out[k] = v
	}
	for k, v := range over {
		for i, c := range v {
			if c.Method == "" {
				v[i].Method = "GET"
			}
			if c.Path == "" {
				return e, fmt.Errorf("endpoint %s[%d]: path required", k, i)
			}
		}
		out[k] = v
	}
	return out, nil
}
