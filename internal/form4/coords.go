package form4

// Alignment of a drawn value relative to its anchor point. The form is
// Hebrew, so right-aligned is the default reading direction.
type Align int

const (
	AlignRight Align = iota
	AlignLeft
	AlignCenter
)

// Placement maps a logical field to a pixel position on one template page.
// Coordinates were measured against the scanned form rendered at 150 DPI
// (1240x1754 per page); regenerating the template images invalidates the
// whole table.
type Placement struct {
	Page     int
	X, Y     float64
	Size     float64
	Align    Align
	MaxWidth float64
}

// PageCount is the number of pre-rendered template pages of the form.
const PageCount = 4

var placements = map[string]Placement{
	// Page 1 – declarant identity
	"applicantName":    {Page: 0, X: 880, Y: 286, Size: 26, Align: AlignRight},
	"applicantId":      {Page: 0, X: 420, Y: 286, Size: 26, Align: AlignRight},
	"applicantAddress": {Page: 0, X: 880, Y: 344, Size: 24, Align: AlignRight, MaxWidth: 520},
	"applicantPhone":   {Page: 0, X: 420, Y: 344, Size: 24, Align: AlignRight},
	"respondentName":   {Page: 0, X: 880, Y: 402, Size: 26, Align: AlignRight},
	"respondentId":     {Page: 0, X: 420, Y: 402, Size: 26, Align: AlignRight},
	"caseNumber":       {Page: 0, X: 310, Y: 180, Size: 24, Align: AlignCenter},
	"formDate":         {Page: 0, X: 980, Y: 180, Size: 24, Align: AlignRight},

	// Page 1 – children table (four printed rows)
	"child1Name":  {Page: 0, X: 1030, Y: 620, Size: 22, Align: AlignRight},
	"child1Id":    {Page: 0, X: 700, Y: 620, Size: 22, Align: AlignRight},
	"child1Birth": {Page: 0, X: 430, Y: 620, Size: 22, Align: AlignRight},
	"child2Name":  {Page: 0, X: 1030, Y: 668, Size: 22, Align: AlignRight},
	"child2Id":    {Page: 0, X: 700, Y: 668, Size: 22, Align: AlignRight},
	"child2Birth": {Page: 0, X: 430, Y: 668, Size: 22, Align: AlignRight},
	"child3Name":  {Page: 0, X: 1030, Y: 716, Size: 22, Align: AlignRight},
	"child3Id":    {Page: 0, X: 700, Y: 716, Size: 22, Align: AlignRight},
	"child3Birth": {Page: 0, X: 430, Y: 716, Size: 22, Align: AlignRight},
	"child4Name":  {Page: 0, X: 1030, Y: 764, Size: 22, Align: AlignRight},
	"child4Id":    {Page: 0, X: 700, Y: 764, Size: 22, Align: AlignRight},
	"child4Birth": {Page: 0, X: 430, Y: 764, Size: 22, Align: AlignRight},

	// Page 2 – income
	"employer":         {Page: 1, X: 980, Y: 260, Size: 24, Align: AlignRight, MaxWidth: 560},
	"occupation":       {Page: 1, X: 980, Y: 318, Size: 24, Align: AlignRight, MaxWidth: 560},
	"monthlyIncome":    {Page: 1, X: 400, Y: 260, Size: 24, Align: AlignRight},
	"respondentIncome": {Page: 1, X: 400, Y: 318, Size: 24, Align: AlignRight},
	"otherIncome":      {Page: 1, X: 980, Y: 430, Size: 22, Align: AlignRight, MaxWidth: 700},

	// Page 3 – monthly expenses
	"expenseHousing":   {Page: 2, X: 360, Y: 252, Size: 22, Align: AlignRight},
	"expenseFood":      {Page: 2, X: 360, Y: 300, Size: 22, Align: AlignRight},
	"expenseClothing":  {Page: 2, X: 360, Y: 348, Size: 22, Align: AlignRight},
	"expenseEducation": {Page: 2, X: 360, Y: 396, Size: 22, Align: AlignRight},
	"expenseHealth":    {Page: 2, X: 360, Y: 444, Size: 22, Align: AlignRight},
	"expenseTransport": {Page: 2, X: 360, Y: 492, Size: 22, Align: AlignRight},
	"expenseOther":     {Page: 2, X: 360, Y: 540, Size: 22, Align: AlignRight},
	"expenseTotal":     {Page: 2, X: 360, Y: 640, Size: 24, Align: AlignRight},

	// Page 3 – property and debts summary
	"propertySummary": {Page: 2, X: 1030, Y: 840, Size: 22, Align: AlignRight, MaxWidth: 760},
	"debtsSummary":    {Page: 2, X: 1030, Y: 1020, Size: 22, Align: AlignRight, MaxWidth: 760},

	// Page 4 – declaration
	"declarationName": {Page: 3, X: 920, Y: 1380, Size: 24, Align: AlignRight},
	"declarationDate": {Page: 3, X: 500, Y: 1380, Size: 24, Align: AlignRight},
}

// Lookup exposes the table for tests.
func Lookup(field string) (Placement, bool) {
	p, ok := placements[field]
	return p, ok
}
