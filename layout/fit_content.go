package layout

// FitContentType is the serialized tag of [FitContent].
const FitContentType = "fit-content"

// FitContent resizes the container to the tightest box enclosing its
// members on every trigger. It is the default strategy.
type FitContent struct {
	Base
}

// NewFitContent returns a FitContent strategy.
func NewFitContent() *FitContent {
	return &FitContent{}
}

// Type implements Strategy.
func (*FitContent) Type() string { return FitContentType }

// CalcLayoutResult implements Strategy.
func (*FitContent) CalcLayoutResult(ctx *StrictContext, objects []Object) *StrategyResult {
	return CalcBoundingBox(ctx, objects, nil)
}
