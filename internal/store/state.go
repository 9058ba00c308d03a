package store

import (
	"time"

	"agtechsummit/internal/domain"
)

// StorageKey is the backend key the state tree is saved under.
const StorageKey = "agtech_summit_db_v2"

// CurrentSchemaVersion is written into every saved snapshot.
const CurrentSchemaVersion = 1

// State is the whole data set, persisted as one JSON object.
type State struct {
	SchemaVersion          int                            `json:"schemaVersion"`
	PaperSubmissions       []domain.PaperSubmission       `json:"paperSubmissions"`
	Enquiries              []domain.Enquiry               `json:"enquiries"`
	Speakers               []domain.Speaker               `json:"speakers"`
	LeadershipApplications []domain.LeadershipApplication `json:"leadershipApplications"`
	// SpeakerApplications is the legacy collection. It is only read by the v0 migration
	// and carried through unchanged.
	SpeakerApplications []domain.SpeakerApplication `json:"speakerApplications"`
	CommitteeMembers    []domain.CommitteeMember    `json:"committeeMembers"`
	Sessions            []domain.Session            `json:"sessions"`
	Registrations       []domain.Registration       `json:"registrations"`
	ExitFeedback        []domain.ExitFeedback       `json:"exitFeedback"`
	PassTiers           []domain.PassTier           `json:"passTiers"`
}

func seedState(now time.Time) *State {
	return &State{
		SchemaVersion:          CurrentSchemaVersion,
		PaperSubmissions:       []domain.PaperSubmission{},
		Enquiries:              []domain.Enquiry{},
		LeadershipApplications: []domain.LeadershipApplication{},
		SpeakerApplications:    []domain.SpeakerApplication{},
		Registrations:          []domain.Registration{},
		ExitFeedback:           []domain.ExitFeedback{},
		PassTiers:              seedPassTiers(),
		Speakers: []domain.Speaker{
			{
				ID:            "spk_1",
				Name:          "Dr. Rajesh Kumar",
				Title:         "Chief Scientist",
				Company:       "Indian Agricultural Research Institute",
				Location:      "New Delhi, India",
				Bio:           "Leading researcher in precision agriculture with 20+ years of experience.",
				Type:          domain.SpeakerTypeKeynote,
				SocialProfile: domain.SocialProfile{Linkedin: "https://linkedin.com"},
				CreatedAt:     now,
			},
			{
				ID:            "spk_2",
				Name:          "Dr. Priya Sharma",
				Title:         "AgTech Founder",
				Company:       "FarmAI Solutions",
				Location:      "Bangalore, India",
				Bio:           "Serial entrepreneur building AI solutions for smallholder farmers.",
				Type:          domain.SpeakerTypeSession,
				SocialProfile: domain.SocialProfile{Linkedin: "https://linkedin.com"},
				CreatedAt:     now,
			},
			{
				ID:        "spk_3",
				Name:      "Mr. Arun Patel",
				Title:     "CEO",
				Company:   "AgriTech Ventures",
				Location:  "Mumbai, India",
				Bio:       "Investor and advisor to multiple AgTech startups across Asia.",
				Type:      domain.SpeakerTypePanelist,
				CreatedAt: now,
			},
		},
		CommitteeMembers: []domain.CommitteeMember{
			{
				ID:           "cm_1",
				Category:     domain.CommitteeOrganizing,
				Name:         "Dr. Meera Iyer",
				Role:         "Program Chair",
				Organization: "IAISR",
				Location:     "Bangalore, India",
				Bio:          "Leads summit program quality and scientific review standards.",
				Order:        1,
				CreatedAt:    now,
			},
			{
				ID:           "cm_2",
				Category:     domain.CommitteeOrganizing,
				Name:         "Prof. Daniel Ross",
				Role:         "Technical Committee",
				Organization: "Agri Robotics Lab",
				Location:     "London, UK",
				Bio:          "Focuses on robotics, autonomy, and applied farm intelligence systems.",
				Order:        2,
				CreatedAt:    now,
			},
			{
				ID:           "cm_3",
				Category:     domain.CommitteeAdvisory,
				Name:         "Ms. Kavya Menon",
				Role:         "Industry Advisory",
				Organization: "FarmChain Ventures",
				Location:     "Singapore",
				Bio:          "Connects startup pipelines with enterprise deployment pathways.",
				Order:        3,
				CreatedAt:    now,
			},
		},
		Sessions: []domain.Session{
			{
				ID:          "ses_1",
				Title:       "Registration & Breakfast",
				Description: "Check-in, badge pickup, and morning networking with coffee and light refreshments.",
				Time:        "08:00 AM",
				EndTime:     "09:00 AM",
				Day:         domain.Day1,
				Track:       "social",
				Venue:       "Grand Foyer",
				Type:        domain.SessionTypeSocial,
			},
			{
				ID:          "ses_2",
				Title:       "Opening Keynote: The Future of AgTech in India",
				Description: "Exploring the next frontier where AI meets precision agriculture and autonomous farming.",
				Time:        "09:00 AM",
				EndTime:     "10:15 AM",
				Day:         domain.Day1,
				Track:       "keynote",
				SpeakerID:   "spk_1",
				Venue:       "Grand Ballroom",
				Type:        domain.SessionTypeKeynote,
			},
			{
				ID:          "ses_3",
				Title:       "Precision Agriculture: AI-Driven Crop Management",
				Description: "How AI and IoT sensors are optimizing irrigation, fertilization, and pest control.",
				Time:        "10:30 AM",
				EndTime:     "11:30 AM",
				Day:         domain.Day1,
				Track:       "agtech",
				SpeakerID:   "spk_2",
				Venue:       "Sands Hall A",
				Type:        domain.SessionTypeSession,
			},
		},
	}
}

// prices builds a tier price map from amounts in CurrencyCodes order.
func prices(amounts ...int) map[string]int {
	m := make(map[string]int, len(amounts))
	for i, a := range amounts {
		m[domain.CurrencyCodes[i]] = a
	}
	return m
}

func seedPassTiers() []domain.PassTier {
	return []domain.PassTier{
		{
			ID: "early-bird", Name: "Early Bird", Mode: domain.PassModeInPerson,
			Prices: prices(12499, 149, 139, 119, 229, 199, 199, 549),
			Badge:  "LIMITED", BadgeColor: "bg-agtech-lime text-agtech-black",
			Description: "Best value for early registrants",
		},
		{
			ID: "regular", Name: "Regular", Mode: domain.PassModeInPerson,
			Prices: prices(17499, 209, 194, 164, 319, 279, 279, 769),
			Badge:  "POPULAR", BadgeColor: "bg-agtech-cyan text-agtech-black",
			Description: "Full conference experience",
		},
		{
			ID: "student", Name: "Student", Mode: domain.PassModeInPerson,
			Prices: prices(8749, 104, 97, 82, 159, 139, 139, 384),
			Badge:  "ECONOMY", BadgeColor: "bg-blue-500 text-white",
			Description: "Valid student ID required",
		},
		{
			ID: "e-oral", Name: "E-Oral", Mode: domain.PassModeVirtual,
			Prices: prices(6249, 74, 69, 59, 114, 99, 99, 274),
			Badge:  "REMOTE", BadgeColor: "bg-purple-500 text-white",
			Description: "Present your research virtually",
		},
		{
			ID: "e-poster", Name: "E-Poster", Mode: domain.PassModeVirtual,
			Prices: prices(4124, 49, 45, 39, 75, 65, 65, 180),
			Badge:  "REMOTE", BadgeColor: "bg-purple-500 text-white",
			Description: "Digital poster presentation",
		},
		{
			ID: "listener", Name: "Listener", Mode: domain.PassModeVirtual,
			Prices: prices(874, 10, 9, 8, 16, 14, 14, 38),
			Badge:  "DELEGATE", BadgeColor: "bg-orange-500 text-white",
			Description: "Access to all live streams",
		},
	}
}
