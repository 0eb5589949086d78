package output

// DefaultAssumptions lists the plan modeling rules rendered in detailed outputs
var DefaultAssumptions = []string{
	"Plan premium: base premium x plan multiplier, rounded to whole rupees",
	"Monthly premium: annual plan premium / 12, rounded",
	"Claimable amount: 1.5x premiums paid, plus 0.6x the annual premium for each year beyond five",
	"Claimable amount never exceeds the plan coverage limit",
	"Premium held constant over the term (no inflation)",
}
