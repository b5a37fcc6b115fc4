package lookup

// Plan is a subscription tier shown on the pricing pages. Plans are static
// display data; payment processing is out of scope.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Audience     string   `json:"audience"`
	MonthlyPrice float64  `json:"monthly_price"`
	Features     []string `json:"features"`
}

var plans = []Plan{
	{
		ID: "starter", Name: "Starter", Audience: "freelancer", MonthlyPrice: 0,
		Features: []string{"5 proposals per month", "Basic profile", "Community support"},
	},
	{
		ID: "pro", Name: "Pro", Audience: "freelancer", MonthlyPrice: 19,
		Features: []string{"Unlimited proposals", "Featured profile", "Priority support", "Proposal analytics"},
	},
	{
		ID: "business", Name: "Business", Audience: "client", MonthlyPrice: 49,
		Features: []string{"Unlimited projects", "Team seats", "Dedicated manager", "Custom contracts"},
	},
}

// Plans returns the pricing tiers in display order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanByID looks a plan up by its ID.
func PlanByID(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
