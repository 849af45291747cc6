package costfunction

type SegmentAttributes interface {
	GetID() string
	GetSpeed() float64
}

type CostFunction interface {
	GetWeight(e SegmentAttributes) float64
}
