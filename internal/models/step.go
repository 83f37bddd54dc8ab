package models

// Step is the full record for a single procedure step. Every pointer or
// slice field is an optional group the upstream may omit entirely; absence
// means "not specified", never an error.
type Step struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	ProcedureID    int           `json:"procedureId,omitempty"`
	IsOptional     bool          `json:"isOptional,omitempty"`
	IsCertified    bool          `json:"isCertified,omitempty"`
	IsParallel     bool          `json:"isParallel,omitempty"`
	IsOnline       bool          `json:"isOnline,omitempty"`
	Online         *OnlineAccess `json:"online,omitempty"`
	Contact        *Contact      `json:"contact,omitempty"`
	Requirements   []Requirement `json:"requirements,omitempty"`
	Results        []Result      `json:"results,omitempty"`
	Timeframe      *Timeframe    `json:"timeframe,omitempty"`
	Costs          []Cost        `json:"costs,omitempty"`
	AdditionalInfo *TextBlock    `json:"additionalInfo,omitempty"`
	Laws           []Law         `json:"laws,omitempty"`
}

// OnlineAccess points at the portal where a step can be completed online.
type OnlineAccess struct {
	URL string `json:"url,omitempty"`
}

// Contact identifies who to interact with for a step.
type Contact struct {
	EntityInCharge *Entity `json:"entityInCharge,omitempty"`
	UnitInCharge   *Entity `json:"unitInCharge,omitempty"`
	PersonInCharge *Entity `json:"personInCharge,omitempty"`
}

// Entity is an institution, unit or person referenced by a contact.
type Entity struct {
	Name         string `json:"name,omitempty"`
	FirstPhone   string `json:"firstPhone,omitempty"`
	FirstEmail   string `json:"firstEmail,omitempty"`
	FirstWebsite string `json:"firstWebsite,omitempty"`
	Address      string `json:"address,omitempty"`
}

// Requirement is a document or precondition for a step.
type Requirement struct {
	Name            string `json:"name"`
	NbOriginal      int    `json:"nbOriginal,omitempty"`
	NbCopy          int    `json:"nbCopy,omitempty"`
	NbAuthenticated int    `json:"nbAuthenticated,omitempty"`
}

// Result is a document or state produced by completing a step.
type Result struct {
	Name string `json:"name"`
}

// Timeframe holds upstream wait-time estimates for a step.
type Timeframe struct {
	TimeSpentAtCounter       *TimeEstimate `json:"timeSpentAtTheCounter,omitempty"`
	WaitingTimeInLine        *TimeEstimate `json:"waitingTimeInLine,omitempty"`
	WaitingTimeUntilNextStep *TimeEstimate `json:"waitingTimeUntilNextStep,omitempty"`
	Comments                 string        `json:"comments,omitempty"`
}

// TimeEstimate expresses a duration in whichever unit the upstream chose.
type TimeEstimate struct {
	Minutes *MaxValue `json:"minutes,omitempty"`
	Hours   *MaxValue `json:"hours,omitempty"`
	Days    *MaxValue `json:"days,omitempty"`
}

// MaxValue wraps the upstream's {"max": n} envelope.
type MaxValue struct {
	Max float64 `json:"max,omitempty"`
}

// Cost is a fee attached to a step.
type Cost struct {
	Value     float64 `json:"value,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	Operator  string  `json:"operator,omitempty"`
	Parameter string  `json:"parameter,omitempty"`
	Comments  string  `json:"comments,omitempty"`
}

// TextBlock wraps the upstream's {"text": "..."} envelope.
type TextBlock struct {
	Text string `json:"text,omitempty"`
}

// Law is a legal reference backing a step.
type Law struct {
	Name string `json:"name"`
}
