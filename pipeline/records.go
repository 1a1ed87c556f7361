package pipeline

import "time"

// ScrapedRace is the record the extraction collaborator hands over for one
// race card. Optional fields arrive as "" or "N/A" and are stored as null.
type ScrapedRace struct {
	RaceIDHint     string               `json:"race_id,omitempty"`
	Title          string               `json:"title"`
	RaceDate       string               `json:"race_date"`
	TrackCode      string               `json:"track_code"`
	RaceNumber     string               `json:"race_number"`
	RaceType       string               `json:"race_type"`
	Distance       string               `json:"distance,omitempty"`
	Surface        string               `json:"surface,omitempty"`
	Conditions     string               `json:"conditions,omitempty"`
	AgeRestriction string               `json:"age_restriction,omitempty"`
	Purse          string               `json:"purse,omitempty"`
	URL            string               `json:"specific_race_url,omitempty"`
	Participants   []ScrapedParticipant `json:"participants"`
}

func (r ScrapedRace) raceDate() time.Time {
	d, err := time.Parse("2006-01-02", r.RaceDate)
	if err != nil {
		return time.Time{}
	}
	return d
}

// ScrapedParticipant is one runner on a scraped race card. HorseID is the
// canonical slug from the source profile link when the extractor found one.
type ScrapedParticipant struct {
	PostPosition string `json:"pp,omitempty"`
	HorseName    string `json:"horse_name"`
	HorseID      string `json:"horse_id,omitempty"`
	Sire         string `json:"sire,omitempty"`
	Trainer      string `json:"trainer,omitempty"`
	Jockey       string `json:"jockey,omitempty"`
	Status       string `json:"status,omitempty"`
}

// HorseProfile is the record a deep horse-profile scrape hands over.
// Pedigree maps the 14 ancestor slot names (models.PedigreeSlots) to horse
// identities.
type HorseProfile struct {
	Age            *int              `json:"age,omitempty"`
	Sex            *string           `json:"sex,omitempty"`
	Status         *string           `json:"status,omitempty"`
	Owner          *string           `json:"owner,omitempty"`
	Trainer        *string           `json:"trainer,omitempty"`
	Breeder        *string           `json:"breeder,omitempty"`
	CountryOfBirth *string           `json:"country_of_birth,omitempty"`
	Color          *string           `json:"color,omitempty"`
	ProfileURL     *string           `json:"profile_url,omitempty"`
	Pedigree       map[string]string `json:"pedigree,omitempty"`
}
