package deck

// Power coefficients applied per card
const (
	HPWeight         = 0.25
	DamageWeight     = 1.2
	EnergyCostWeight = 3.0
)
