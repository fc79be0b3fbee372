package contact

// Option is a select choice.
type Option struct {
	Value string
	Label string
}

var ProjectTypes = []Option{
	{Value: "web-app", Label: "Web Application Development"},
	{Value: "mobile-app", Label: "Mobile App Development"},
	{Value: "ecommerce", Label: "E-commerce Platform"},
	{Value: "api", Label: "API Development"},
	{Value: "consulting", Label: "Technical Consulting"},
	{Value: "maintenance", Label: "Website Maintenance"},
	{Value: "other", Label: "Other Project Type"},
}

var Budgets = []Option{
	{Value: "5k-10k", Label: "$5,000 - $10,000"},
	{Value: "10k-25k", Label: "$10,000 - $25,000"},
	{Value: "25k-50k", Label: "$25,000 - $50,000"},
	{Value: "50k-100k", Label: "$50,000 - $100,000"},
	{Value: "100k+", Label: "$100,000+"},
	{Value: "discuss", Label: "Let's Discuss"},
}

var Timelines = []Option{
	{Value: "asap", Label: "ASAP (Rush Project)"},
	{Value: "1-2weeks", Label: "1-2 Weeks"},
	{Value: "1month", Label: "1 Month"},
	{Value: "2-3months", Label: "2-3 Months"},
	{Value: "3-6months", Label: "3-6 Months"},
	{Value: "flexible", Label: "Flexible Timeline"},
}

var Urgencies = []Option{
	{Value: "low", Label: "Low"},
	{Value: "normal", Label: "Normal"},
	{Value: "high", Label: "High"},
}
