package entities

import (
	"strconv"
	"strings"
)

type ProfileStats struct {
	Fields     float64 `json:"fields"`
	Tasks      float64 `json:"tasks"`
	Efficiency string  `json:"efficiency"`
}

type UserProfile struct {
	Name         string       `json:"name"`
	Role         string       `json:"role"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Location     string       `json:"location"`
	MemberSince  string       `json:"memberSince"`
	FarmName     string       `json:"farmName"`
	TotalArea    string       `json:"totalArea"`
	PrimaryCrops string       `json:"primaryCrops"`
	Livestock    string       `json:"livestock"`
	Stats        ProfileStats `json:"stats"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type FarmData struct {
	FullName             string       `json:"fullName,omitempty"`
	PhoneNumber          string       `json:"phoneNumber,omitempty"`
	AlternatePhoneNumber string       `json:"alternatePhoneNumber,omitempty"`
	State                string       `json:"state,omitempty"`
	District             string       `json:"district,omitempty"`
	Taluka               string       `json:"taluka,omitempty"`
	Village              string       `json:"village,omitempty"`
	FarmingOption        string       `json:"farmingOption,omitempty"`
	LeadSource           string       `json:"leadSource,omitempty"`
	Note                 string       `json:"note,omitempty"`
	EstimatedLandArea    *float64     `json:"estimatedLandArea,omitempty"`
	WaterAvailable       *bool        `json:"waterAvailable,omitempty"`
	LandCoordinates      *Coordinates `json:"landCoordinates,omitempty"`
}

// Location joins the non-empty address parts, most specific first.
func (f FarmData) Location() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{f.Village, f.Taluka, f.District, f.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type KYCData struct {
	AadharNumber     string `json:"aadharNumber,omitempty"`
	AccountNumber    string `json:"accountNumber,omitempty"`
	PANNumber        string `json:"panNumber,omitempty"`
	IFSCCode         string `json:"ifscCode,omitempty"`
	PermanentAddress string `json:"permanentAddress,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

type FarmerDetails struct {
	FarmerID  string    `json:"farmerId,omitempty"`
	CreatedAt string    `json:"createdAt,omitempty"`
	FarmData  *FarmData `json:"farmData,omitempty"`
	KYC       *KYCData  `json:"kyc,omitempty"`
}

const Dash = "—"

func NumberOrDash(n *float64) string {
	if n == nil {
		return Dash
	}
	return strconv.FormatFloat(*n, 'f', -1, 64)
}

func BoolOrDash(b *bool) string {
	switch {
	case b == nil:
		return Dash
	case *b:
		return "Yes"
	default:
		return "No"
	}
}

func StringOrDash(s string) string {
	if s == "" {
		return Dash
	}
	return s
}
