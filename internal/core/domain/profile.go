package domain

// Profile statuses.
const (
	ProfileActive   = "active"
	ProfileInactive = "inactive"
)

// Profile is a customer targeting profile. Campaigns is an informational
// counter maintained by the caller, not derived from campaign links.
type Profile struct {
	ID                   string               `json:"id" yaml:"id"`
	Name                 string               `json:"name" yaml:"name"`
	SegmentSize          string               `json:"segmentSize" yaml:"segmentSize"`
	Campaigns            int                  `json:"campaigns" yaml:"campaigns"`
	Status               string               `json:"status" yaml:"status"`
	Demographics         Demographics         `json:"demographics" yaml:"demographics"`
	BehavioralAttributes BehavioralAttributes `json:"behavioralAttributes" yaml:"behavioralAttributes"`
}

// Demographics describes who a profile targets.
type Demographics struct {
	AgeRange  string   `json:"ageRange" yaml:"ageRange"`
	Income    string   `json:"income" yaml:"income"`
	Location  []string `json:"location" yaml:"location"`
	Interests []string `json:"interests" yaml:"interests"`
}

// BehavioralAttributes describes how a profile uses the service.
type BehavioralAttributes struct {
	DeviceUsage     string   `json:"deviceUsage" yaml:"deviceUsage"`
	DataConsumption string   `json:"dataConsumption" yaml:"dataConsumption"`
	PlanType        []string `json:"planType" yaml:"planType"`
}

// ProfileInput is a partial profile body.
type ProfileInput struct {
	Name                 *string                    `json:"name"`
	SegmentSize          *string                    `json:"segmentSize"`
	Campaigns            *int                       `json:"campaigns"`
	Status               *string                    `json:"status"`
	Demographics         *DemographicsInput         `json:"demographics"`
	BehavioralAttributes *BehavioralAttributesInput `json:"behavioralAttributes"`
}

// DemographicsInput is the partial form of Demographics.
type DemographicsInput struct {
	AgeRange  *string   `json:"ageRange"`
	Income    *string   `json:"income"`
	Location  *[]string `json:"location"`
	Interests *[]string `json:"interests"`
}

// HasScalars reports whether the single-valued demographics columns are
// part of the input.
func (in *DemographicsInput) HasScalars() bool {
	return in != nil && (in.AgeRange != nil || in.Income != nil)
}

// BehavioralAttributesInput is the partial form of BehavioralAttributes.
type BehavioralAttributesInput struct {
	DeviceUsage     *string   `json:"deviceUsage"`
	DataConsumption *string   `json:"dataConsumption"`
	PlanType        *[]string `json:"planType"`
}

// HasScalars reports whether the single-valued behavioral columns are part
// of the input.
func (in *BehavioralAttributesInput) HasScalars() bool {
	return in != nil && (in.DeviceUsage != nil || in.DataConsumption != nil)
}

// Profile builds a profile from the input with empty collections for every
// absent list.
func (in ProfileInput) Profile(id string) Profile {
	p := Profile{
		ID:                   id,
		Demographics:         Demographics{Location: []string{}, Interests: []string{}},
		BehavioralAttributes: BehavioralAttributes{PlanType: []string{}},
	}
	set(&p.Name, in.Name)
	set(&p.SegmentSize, in.SegmentSize)
	set(&p.Campaigns, in.Campaigns)
	set(&p.Status, in.Status)
	if d := in.Demographics; d != nil {
		set(&p.Demographics.AgeRange, d.AgeRange)
		set(&p.Demographics.Income, d.Income)
		if d.Location != nil {
			p.Demographics.Location = Strings(*d.Location)
		}
		if d.Interests != nil {
			p.Demographics.Interests = Strings(*d.Interests)
		}
	}
	if b := in.BehavioralAttributes; b != nil {
		set(&p.BehavioralAttributes.DeviceUsage, b.DeviceUsage)
		set(&p.BehavioralAttributes.DataConsumption, b.DataConsumption)
		if b.PlanType != nil {
			p.BehavioralAttributes.PlanType = Strings(*b.PlanType)
		}
	}
	return p
}
