package normalize

import (
	"strconv"
	"strings"

	"farmconnect/entities"
	"farmconnect/pkg/dates"
	"farmconnect/pkg/status"
)

var (
	taskKeys  = []string{"tasks", "data"}
	visitKeys = []string{"visits", "field_visits", "data"}
	planKeys  = []string{"plan", "cultivation_plan", "data"}
)

// Tasks maps a task list. Ids default to the row index.
func Tasks(raw any) []entities.Task {
	list := List(raw, taskKeys...)
	out := make([]entities.Task, 0, len(list))
	for i, item := range list {
		t := AsObject(item)
		task := entities.Task{
			ID:          t.StringOr(strconv.Itoa(i), "task_id", "id"),
			Title:       t.StringOr("Task", "title", "task_title"),
			Field:       t.StringOr(entities.Dash, "field", "plot_name", "location"),
			Description: t.StringOr("", "description"),
			Status:      status.Task(t.StringOr("", "status", "task_status")),
		}
		if t.Truthy("due_date") {
			task.HarvestDate, _ = t.String("due_date")
		}
		if p, ok := t.Number("progress"); ok {
			p = min(max(p, 0), 100)
			task.Progress = &p
		}
		out = append(out, task)
	}
	return out
}

func FieldVisits(raw any) []entities.FieldVisitRecord {
	list := List(raw, visitKeys...)
	out := make([]entities.FieldVisitRecord, 0, len(list))
	for i, item := range list {
		v := AsObject(item)
		rec := entities.FieldVisitRecord{
			ID:         v.StringOr(strconv.Itoa(i), "visit_id", "id"),
			Title:      v.StringOr("Field Visit", "title", "visit_title"),
			Supervisor: v.StringOr("Supervisor", "supervisor", "inspector"),
			Notes:      v.StringOr("", "notes", "remark"),
			Status:     status.Visit(v.StringOr("", "status", "visit_status")),
		}
		rec.DateText = v.StringOr("", "date", "visit_date")
		if d, ok := dates.ParseString(rec.DateText); ok {
			rec.Date = d
		}
		out = append(out, rec)
	}
	return out
}

// CultivationPlan maps plan rows, dropping any row without an activity.
func CultivationPlan(raw any) []entities.CultivationPlanItem {
	list := List(raw, planKeys...)
	out := make([]entities.CultivationPlanItem, 0, len(list))
	for i, item := range list {
		p := AsObject(item)
		activity := strings.TrimSpace(p.StringOr("", "activity"))
		if activity == "" {
			continue
		}
		row := entities.CultivationPlanItem{
			Activity:      activity,
			AssignedAcres: p.NumberPtr("assigned_acres"),
			Status:        strings.TrimSpace(p.StringOr("", "status", "plan_status")),
		}
		if p.Truthy("date") {
			row.DateText, _ = p.String("date")
			row.Date, _ = dates.ParseString(row.DateText)
		}
		if p.Truthy("farm_id") {
			row.FarmID, _ = p.String("farm_id")
		}
		row.ID = p.StringOr(row.FarmID+"|"+row.DateText+"|"+strconv.Itoa(i), "id", "plan_id")
		out = append(out, row)
	}
	return out
}

// Profile merges a profile payload over prev. Fields the payload does not
// carry keep their previous value; role alone defaults to "Farmer".
func Profile(raw any, prev entities.UserProfile) entities.UserProfile {
	p := AsObject(unwrapProfile(raw))
	out := entities.UserProfile{
		Name:         p.StringOr(prev.Name, "name", "farmer_name"),
		Role:         p.StringOr("Farmer", "role"),
		Email:        p.StringOr(prev.Email, "email", "mail"),
		Phone:        p.StringOr(prev.Phone, "phone", "mobile"),
		Location:     p.StringOr(prev.Location, "location", "address"),
		MemberSince:  p.StringOr(prev.MemberSince, "member_since", "created_at"),
		FarmName:     p.StringOr(prev.FarmName, "farm_name"),
		TotalArea:    p.StringOr(prev.TotalArea, "total_area", "area"),
		PrimaryCrops: p.StringOr(prev.PrimaryCrops, "primary_crops", "crops"),
		Livestock:    p.StringOr(prev.Livestock, "livestock"),
		Stats:        prev.Stats,
	}
	stats := p.Object("stats")
	if n, ok := stats.Number("fields"); ok {
		out.Stats.Fields = n
	}
	if n, ok := stats.Number("tasks"); ok {
		out.Stats.Tasks = n
	}
	out.Stats.Efficiency = stats.StringOr(prev.Stats.Efficiency, "efficiency")
	return out
}

func unwrapProfile(raw any) any {
	if v, ok := AsObject(raw).Value("profile", "farmer", "data"); ok {
		return v
	}
	return raw
}

// FarmerDetails reads the nested farmer record. It returns nil when the
// payload carries no farmer object.
func FarmerDetails(raw any) *entities.FarmerDetails {
	f := AsObject(raw).Object("farmer")
	if f == nil {
		return nil
	}
	d := &entities.FarmerDetails{
		FarmerID:  f.StringOr("", "farmer_id"),
		CreatedAt: f.StringOr("", "created_at"),
	}
	if fd := f.Object("farmer_data"); fd != nil {
		d.FarmData = &entities.FarmData{
			FullName:             fd.StringOr("", "full_name"),
			PhoneNumber:          fd.StringOr("", "phone_number"),
			AlternatePhoneNumber: fd.StringOr("", "alternate_phone_number"),
			State:                fd.StringOr("", "state"),
			District:             fd.StringOr("", "district"),
			Taluka:               fd.StringOr("", "taluka"),
			Village:              fd.StringOr("", "village"),
			FarmingOption:        fd.StringOr("", "farming_option"),
			LeadSource:           fd.StringOr("", "lead_source"),
			Note:                 fd.StringOr("", "note"),
			EstimatedLandArea:    fd.NumberPtr("estimated_land_area"),
			WaterAvailable:       fd.Bool("water_available"),
			LandCoordinates:      coordinates(fd["land_coordinates"]),
		}
	}
	if k := f.Object("kyc_data"); k != nil {
		d.KYC = &entities.KYCData{
			AadharNumber:     k.StringOr("", "adhar_number", "aadhar_number"),
			AccountNumber:    k.StringOr("", "accound_number", "account_number"),
			PANNumber:        k.StringOr("", "pan_numnber", "pan_number"),
			IFSCCode:         k.StringOr("", "IFSC_code", "ifsc_code"),
			PermanentAddress: k.StringOr("", "permanent_address"),
			UpdatedAt:        k.StringOr("", "updated_at"),
		}
	}
	return d
}

// coordinates accepts a [lat, lon] pair; both must be finite.
func coordinates(v any) *entities.Coordinates {
	pair, ok := v.([]any)
	if !ok || len(pair) < 2 {
		return nil
	}
	lat, ok1 := toNumber(pair[0])
	lon, ok2 := toNumber(pair[1])
	if !ok1 || !ok2 {
		return nil
	}
	return &entities.Coordinates{Lat: lat, Lon: lon}
}
