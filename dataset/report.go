package dataset

import "github.com/hupe1980/kmeans"

// Report is the serialized form of a clustering result.
type Report struct {
	K          int        `json:"k"`
	Iterations int        `json:"iterations"`
	Inertia    float64    `json:"inertia"`
	Centroids  []Centroid `json:"centroids"`
	Points     []Row      `json:"points"`
}

// Centroid describes one group of a Report.
type Centroid struct {
	Index   int      `json:"index"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	SeedX   float64  `json:"seed_x"`
	SeedY   float64  `json:"seed_y"`
	Size    int      `json:"size"`
	Members []string `json:"members"`
}

// Row is one point together with its assigned centroid.
type Row struct {
	Label     string  `json:"label" csv:"label"`
	X         float64 `json:"x" csv:"x"`
	Y         float64 `json:"y" csv:"y"`
	Cluster   int     `json:"cluster" csv:"cluster"`
	CentroidX float64 `json:"centroid_x" csv:"centroid_x"`
	CentroidY float64 `json:"centroid_y" csv:"centroid_y"`
}

// NewReport builds a report for res. points must be the slice res was
// computed from.
func NewReport(points []kmeans.Point, res *kmeans.Result) *Report {
	r := &Report{
		K:          res.K(),
		Iterations: res.Iterations,
		Inertia:    res.Inertia,
		Centroids:  make([]Centroid, res.K()),
		Points:     make([]Row, len(points)),
	}

	for c, v := range res.Centroids {
		members := make([]string, 0)
		for _, i := range res.Group(c) {
			members = append(members, points[i].Label)
		}
		r.Centroids[c] = Centroid{
			Index:   c,
			X:       v.X,
			Y:       v.Y,
			SeedX:   res.Seeds[c].X,
			SeedY:   res.Seeds[c].Y,
			Size:    len(members),
			Members: members,
		}
	}

	for i, p := range points {
		c := res.Assignment[i]
		r.Points[i] = Row{
			Label:     p.Label,
			X:         p.X,
			Y:         p.Y,
			Cluster:   c,
			CentroidX: res.Centroids[c].X,
			CentroidY: res.Centroids[c].Y,
		}
	}
	return r
}
