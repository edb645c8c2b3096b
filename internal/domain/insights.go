package domain

// Insight is a titled list of informational tips.
type Insight struct {
	Title   string
	Content []string
	Source  string
}

// Compatibility describes who a blood type can give to and receive from.
type Compatibility struct {
	BloodType      string
	CanGiveTo      []string
	CanReceiveFrom []string
}

// FirstAidGuide holds ordered first-aid steps for one condition.
type FirstAidGuide struct {
	Condition string
	Steps     []string
}
