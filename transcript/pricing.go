package transcript

// ModelPricing is the USD price per token of a model.
type ModelPricing struct {
	Input         float64
	Output        float64
	CacheCreation float64
	CacheRead     float64
}

const perMillion = 1.0 / 1_000_000

var modelPricing = map[string]ModelPricing{
	"claude-opus-4-1-20250805": {
		Input:         15 * perMillion,
		Output:        75 * perMillion,
		CacheCreation: 18.75 * perMillion,
		CacheRead:     1.875 * perMillion,
	},
	"claude-sonnet-4-20250514": {
		Input:         3 * perMillion,
		Output:        15 * perMillion,
		CacheCreation: 3.75 * perMillion,
		CacheRead:     0.30 * perMillion,
	},
	"claude-sonnet-4-1-20250905": {
		Input:         3 * perMillion,
		Output:        15 * perMillion,
		CacheCreation: 3.75 * perMillion,
		CacheRead:     0.30 * perMillion,
	},
	"claude-haiku-3-5-20241022": {
		Input:         1 * perMillion,
		Output:        5 * perMillion,
		CacheCreation: 1.25 * perMillion,
		CacheRead:     0.10 * perMillion,
	},
}

// PricingFor returns the pricing of a model id.
func PricingFor(modelID string) (ModelPricing, bool) {
	p, ok := modelPricing[modelID]
	return p, ok
}

// Cost prices one message's usage.
func (p ModelPricing) Cost(u Usage) float64 {
	return float64(u.InputTokens)*p.Input +
		float64(u.OutputTokens)*p.Output +
		float64(u.CacheCreationInputTokens)*p.CacheCreation +
		float64(u.CacheReadInputTokens)*p.CacheRead
}
