package draft

// CompanyProfile is one side of a company board: the stage-0 base card plus
// the ordered stage cards built on top of it. Profiles are assigned once at
// match setup and never change.
type CompanyProfile struct {
	Company string
	Side    string
	Base    *Card
	Stages  []*Card
}

// MaxStage is the number of constructible stages on this side.
func (p CompanyProfile) MaxStage() int {
	return len(p.Stages)
}

func (p CompanyProfile) String() string {
	return p.Company + " " + p.Side
}

// Company is a double-sided company board.
type Company struct {
	Name  string
	SideA CompanyProfile
	SideB CompanyProfile
}

// Side returns side A for 0 and side B for any other value, matching a
// two-way random draw.
func (c Company) Side(i int) CompanyProfile {
	if i == 0 {
		return c.SideA
	}
	return c.SideB
}
