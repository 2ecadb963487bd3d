package domain

// Society is the fixed set of student societies that own events.
type Society string

const (
	SocietyComputing   Society = "COMPUTING"
	SocietyRobotics    Society = "ROBOTICS"
	SocietyDrama       Society = "DRAMA"
	SocietyMusic       Society = "MUSIC"
	SocietyDebate      Society = "DEBATE"
	SocietySports      Society = "SPORTS"
	SocietyPhotography Society = "PHOTOGRAPHY"
)

func (s Society) String() string { return string(s) }

func (s Society) IsValid() bool {
	switch s {
	case SocietyComputing, SocietyRobotics, SocietyDrama, SocietyMusic,
		SocietyDebate, SocietySports, SocietyPhotography:
		return true
	}
	return false
}

// Societies lists all valid societies in declaration order.
func Societies() []Society {
	return []Society{
		SocietyComputing, SocietyRobotics, SocietyDrama, SocietyMusic,
		SocietyDebate, SocietySports, SocietyPhotography,
	}
}

// Category classifies the kind of event.
type Category string

const (
	CategoryWorkshop    Category = "WORKSHOP"
	CategorySeminar     Category = "SEMINAR"
	CategoryCompetition Category = "COMPETITION"
	CategorySocial      Category = "SOCIAL"
	CategoryPerformance Category = "PERFORMANCE"
	CategorySports      Category = "SPORTS"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryWorkshop, CategorySeminar, CategoryCompetition,
		CategorySocial, CategoryPerformance, CategorySports:
		return true
	}
	return false
}

// Role is the authorization level of a user.
type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganizer Role = "society-organizer"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleOrganizer:
		return true
	}
	return false
}

// Sentiment is the classified mood of aggregated event feedback.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) String() string { return string(s) }

// Trend is the direction of a registration-count series.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

func (t Trend) String() string { return string(t) }
