package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmconnect/entities"
	"farmconnect/pkg/transport"
)

// decode goes through the same decoder the client uses, so numbers arrive
// as json.Number.
func decode(t *testing.T, s string) any {
	t.Helper()
	v := transport.Decode(s)
	if str, ok := v.(string); ok && str == s {
		t.Fatalf("fixture is not JSON: %s", s)
	}
	return v
}

func TestTaskMapping(t *testing.T) {
	raw := decode(t, `[{"task_id":7,"task_title":"Irrigate","status":"in_progress","due_date":"2026-02-01"}]`)
	tasks := Tasks(raw)
	require.Len(t, tasks, 1)
	assert.Equal(t, entities.Task{
		ID:          "7",
		Title:       "Irrigate",
		Field:       entities.Dash,
		Status:      entities.TaskInProgress,
		HarvestDate: "2026-02-01",
	}, tasks[0])
}

func TestTaskDefaults(t *testing.T) {
	raw := decode(t, `{"tasks":[{}, {"id":"a","title":{"x":1},"task_title":"Weed","plot_name":"North","progress":"140","task_status":"URGENT","due_date":""}]}`)
	tasks := Tasks(raw)
	require.Len(t, tasks, 2)

	assert.Equal(t, "0", tasks[0].ID)
	assert.Equal(t, "Task", tasks[0].Title)
	assert.Equal(t, entities.TaskPending, tasks[0].Status)
	assert.Nil(t, tasks[0].Progress)

	assert.Equal(t, "a", tasks[1].ID)
	assert.Equal(t, "Weed", tasks[1].Title)
	assert.Equal(t, "North", tasks[1].Field)
	assert.Equal(t, entities.TaskUrgent, tasks[1].Status)
	assert.Empty(t, tasks[1].HarvestDate)
	require.NotNil(t, tasks[1].Progress)
	assert.Equal(t, 100.0, *tasks[1].Progress)
}

func TestListWrapperTolerance(t *testing.T) {
	bodies := []string{
		`[{"task_id":1}]`,
		`{"tasks":[{"task_id":1}]}`,
		`{"data":[{"task_id":1}]}`,
	}
	for _, b := range bodies {
		t.Run(b, func(t *testing.T) {
			got := Tasks(decode(t, b))
			require.Len(t, got, 1)
			assert.Equal(t, "1", got[0].ID)
		})
	}
	assert.Empty(t, Tasks(decode(t, `{"items":[{"task_id":1}]}`)))
	assert.Empty(t, Tasks(nil))
	assert.Empty(t, Tasks("oops"))
	assert.Len(t, FieldVisits(decode(t, `{"field_visits":[{}]}`)), 1)
}

func TestFieldVisits(t *testing.T) {
	raw := decode(t, `{"visits":[{"visit_id":3,"visit_title":"Soil check","inspector":"Ravi","visit_date":"2026-01-17","remark":"ok","visit_status":"Overdue"},{"date":"soon"}]}`)
	v := FieldVisits(raw)
	require.Len(t, v, 2)
	assert.Equal(t, "3", v[0].ID)
	assert.Equal(t, "Soil check", v[0].Title)
	assert.Equal(t, "Ravi", v[0].Supervisor)
	assert.Equal(t, "ok", v[0].Notes)
	assert.Equal(t, entities.VisitOverdue, v[0].Status)
	assert.Equal(t, time.Date(2026, 1, 17, 12, 0, 0, 0, time.UTC), v[0].Date)

	assert.Equal(t, "Field Visit", v[1].Title)
	assert.Equal(t, "Supervisor", v[1].Supervisor)
	assert.Equal(t, entities.VisitScheduled, v[1].Status)
	assert.True(t, v[1].Date.IsZero())
	assert.Equal(t, "soon", v[1].DateText)
}

func TestCultivationPlanDropsEmptyRows(t *testing.T) {
	raw := decode(t, `[
		{"activity":"","farm_id":""},
		{"date":"2026-03-01"},
		{"activity":"  Sowing  "},
		{"activity":"Weeding","date":"2026-03-05","farm_id":"F9","assigned_acres":"2.5","status":"pending"},
		{"activity":"Harvest","id":77,"plan_status":"done"}
	]`)
	rows := CultivationPlan(raw)
	require.Len(t, rows, 3)

	assert.Equal(t, "Sowing", rows[0].Activity)
	assert.Equal(t, "||2", rows[0].ID)
	assert.Nil(t, rows[0].AssignedAcres)

	assert.Equal(t, "F9|2026-03-05|3", rows[1].ID)
	require.NotNil(t, rows[1].AssignedAcres)
	assert.Equal(t, 2.5, *rows[1].AssignedAcres)
	assert.Equal(t, "pending", rows[1].Status)
	assert.Equal(t, 5, rows[1].Date.Day())

	assert.Equal(t, "77", rows[2].ID)
	assert.Equal(t, "done", rows[2].Status)
}

func TestProfileMergesOverPrevious(t *testing.T) {
	prev := entities.UserProfile{
		Name: "Old", Role: "Owner", Email: "old@x", Phone: "1", Location: "L",
		MemberSince: "2020", FarmName: "Green", TotalArea: "5", PrimaryCrops: "Rice",
		Livestock: "None", Stats: entities.ProfileStats{Fields: 2, Tasks: 3, Efficiency: "90%"},
	}
	raw := decode(t, `{"profile":{"farmer_name":"Asha","mobile":9876,"crops":"Wheat","stats":{"fields":"4","tasks":"n/a"}}}`)
	got := Profile(raw, prev)

	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, "Farmer", got.Role)
	assert.Equal(t, "old@x", got.Email)
	assert.Equal(t, "9876", got.Phone)
	assert.Equal(t, "Wheat", got.PrimaryCrops)
	assert.Equal(t, "Green", got.FarmName)
	assert.Equal(t, 4.0, got.Stats.Fields)
	assert.Equal(t, 3.0, got.Stats.Tasks)
	assert.Equal(t, "90%", got.Stats.Efficiency)
}

func TestProfileUnwrapOrder(t *testing.T) {
	got := Profile(decode(t, `{"farmer":{"name":"F"},"data":{"name":"D"}}`), entities.UserProfile{})
	assert.Equal(t, "F", got.Name)
	got = Profile(decode(t, `{"name":"Bare"}`), entities.UserProfile{})
	assert.Equal(t, "Bare", got.Name)
	got = Profile(nil, entities.UserProfile{Name: "Kept"})
	assert.Equal(t, "Kept", got.Name)
}

func TestFarmerDetails(t *testing.T) {
	assert.Nil(t, FarmerDetails(decode(t, `{"ok":true}`)))

	raw := decode(t, `{"farmer":{"farmer_id":"F-1","farmer_data":{"full_name":"Asha","village":"V","state":"S","estimated_land_area":3.5,"water_available":"yes","land_coordinates":[12.9,"77.5"]},"kyc_data":{"adhar_number":"1234","accound_number":"99","pan_numnber":"P","IFSC_code":"I"}}}`)
	d := FarmerDetails(raw)
	require.NotNil(t, d)
	assert.Equal(t, "F-1", d.FarmerID)
	require.NotNil(t, d.FarmData)
	assert.Equal(t, "V, S", d.FarmData.Location())
	assert.Equal(t, "3.5", entities.NumberOrDash(d.FarmData.EstimatedLandArea))
	assert.Equal(t, entities.Dash, entities.BoolOrDash(d.FarmData.WaterAvailable))
	assert.Equal(t, &entities.Coordinates{Lat: 12.9, Lon: 77.5}, d.FarmData.LandCoordinates)
	require.NotNil(t, d.KYC)
	assert.Equal(t, "1234", d.KYC.AadharNumber)
	assert.Equal(t, "99", d.KYC.AccountNumber)
	assert.Equal(t, "P", d.KYC.PANNumber)
	assert.Equal(t, "I", d.KYC.IFSCCode)

	bad := FarmerDetails(decode(t, `{"farmer":{"farmer_data":{"land_coordinates":[12.9,"north"]}}}`))
	assert.Nil(t, bad.FarmData.LandCoordinates)
}

func TestRateCards(t *testing.T) {
	raw := decode(t, `{"rental_rate_cards":[{"service_name":"Power Tiller","price":"450"},{"name":"Drone","service_key":"drone","rate":"x"}]}`)
	cards := RateCards(raw)
	require.Len(t, cards, 2)
	assert.Equal(t, "power_tiller", cards[0].Key)
	assert.Equal(t, "₹450", cards[0].PriceLabel)
	assert.Equal(t, 450.0, cards[0].PriceValue)
	assert.Equal(t, 2, cards[0].DaysUntilAvailable)
	assert.Equal(t, "drone", cards[1].Key)
	assert.Equal(t, "₹0", cards[1].PriceLabel)
}

func TestRentalRequests(t *testing.T) {
	now := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	raw := decode(t, `{"farmer_rental_requests":[
		{"rental_id":11,"service_name":"Tractor","request_details":{"status":"approved","area":"2 acres","farmer_name":"Asha","request_id":"R-9","requested_date":"2026-01-05"}},
		{"request":{"status":""}}
	]}`)
	reqs := RentalRequests(raw, now)
	require.Len(t, reqs, 2)

	assert.Equal(t, "11", reqs[0].ID)
	assert.Equal(t, "R-9", reqs[0].RequestID)
	assert.Equal(t, "Tractor", reqs[0].Title)
	assert.Equal(t, entities.ServiceInProgress, reqs[0].Status)
	assert.Equal(t, "Area: 2 acres • Farmer: Asha", reqs[0].Description)
	assert.Equal(t, "Equipment", reqs[0].Category)
	assert.Equal(t, "Medium", reqs[0].Priority)

	assert.Equal(t, "1768032000000-1", reqs[1].ID)
	assert.Equal(t, "REQ-2", reqs[1].RequestID)
	assert.Equal(t, "Service Request", reqs[1].Title)
	assert.Equal(t, entities.ServicePending, reqs[1].Status)
	assert.Equal(t, "Area: —", reqs[1].Description)
	assert.Equal(t, "2026-01-10T08:00:00.000Z", reqs[1].RequestedDate)

	assert.Empty(t, RentalRequests(decode(t, `[{"rental_id":1}]`), now))
}

func TestLoginAndRequestID(t *testing.T) {
	ok := Login(decode(t, `{"success":true,"farmer_id":" F-100 "}`))
	assert.True(t, ok.Success)
	assert.Equal(t, "F-100", ok.FarmerID)

	bad := Login(decode(t, `{"success":false,"detail":"locked"}`))
	assert.False(t, bad.Success)
	assert.Equal(t, "locked", bad.Message)

	id, found := RequestID(decode(t, `{"id":4521}`))
	assert.True(t, found)
	assert.Equal(t, "4521", id)
	_, found = RequestID("created")
	assert.False(t, found)
}

func TestObjectCoercion(t *testing.T) {
	o := AsObject(map[string]any{
		"n": json.Number("1e400"), "s": " 12 ", "b": true, "arr": []any{1}, "z": nil,
	})
	_, ok := o.Number("n")
	assert.False(t, ok, "non-finite numbers are absent")
	n, ok := o.Number("b", "s")
	assert.True(t, ok)
	assert.Equal(t, 12.0, n)
	assert.Equal(t, "fallback", o.StringOr("fallback", "arr", "z"))
	assert.Equal(t, "true", o.StringOr("", "b"))
	assert.Nil(t, o.Bool("s"))
	assert.Nil(t, AsObject([]any{}))
}
