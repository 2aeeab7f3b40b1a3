package models

// FloraType indicates what foragers collect from a plant.
type FloraType string

const (
	FloraNectar FloraType = "Nectar"
	FloraPollen FloraType = "Pollen"
	FloraBoth   FloraType = "Both"
)

// Flora is a local forage plant tracked on the seasonal bloom calendar.
// Months are zero-based (January = 0). SketchURL holds the generated
// botanical sketch once one exists.
type Flora struct {
	ID             string    `json:"id"`
	CommonName     string    `json:"commonName"`
	ScientificName string    `json:"scientificName"`
	Type           FloraType `json:"type"`
	BloomMonths    []int     `json:"bloomMonths"`
	PeakMonths     []int     `json:"peakMonths"`
	SketchURL      string    `json:"sketchUrl,omitempty"`
}
