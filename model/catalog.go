package model

// WheelPrize is one sector of the prize wheel. Probability is a percentage.
type WheelPrize struct {
	Value       int64  `json:"value"`
	Probability int    `json:"probability"`
	Label       string `json:"label"`
	Color       string `json:"color"`
}

type SpinPackage struct {
	Key   string `json:"key"`
	Spins int    `json:"spins"`
	Price int64  `json:"price"`
	Label string `json:"label"`
}

var wheelPrizes = []WheelPrize{
	{Value: 10, Probability: 40, Label: "10 GKY", Color: "#FF6384"},
	{Value: 20, Probability: 30, Label: "20 GKY", Color: "#36A2EB"},
	{Value: 50, Probability: 15, Label: "50 GKY", Color: "#FFCE56"},
	{Value: 100, Probability: 10, Label: "100 GKY", Color: "#4BC0C0"},
	{Value: 200, Probability: 4, Label: "200 GKY", Color: "#9966FF"},
	{Value: 500, Probability: 1, Label: "500 GKY", Color: "#FF9F40"},
}

var spinPackages = []SpinPackage{
	{Key: "3_spins", Spins: 3, Price: 300, Label: "3 spin - 300 GKY"},
	{Key: "5_spins", Spins: 5, Price: 500, Label: "5 spin - 500 GKY"},
	{Key: "10_spins", Spins: 10, Price: 1000, Label: "10 spin - 1000 GKY"},
}

// WheelPrizes returns a copy of the wheel configuration in display order.
func WheelPrizes() []WheelPrize {
	out := make([]WheelPrize, len(wheelPrizes))
	copy(out, wheelPrizes)
	return out
}

// SpinPackages returns a copy of the purchasable packages in display order.
func SpinPackages() []SpinPackage {
	out := make([]SpinPackage, len(spinPackages))
	copy(out, spinPackages)
	return out
}

func FindSpinPackage(key string) (SpinPackage, bool) {
	for _, p := range spinPackages {
		if p.Key == key {
			return p, true
		}
	}
	return SpinPackage{}, false
}
