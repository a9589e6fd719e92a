package catalog

// Media asset identifiers bundled with the showcase.
const (
	AssetTrackingVideo = "Videoai.mp4"
	AssetTennisVideo   = "videotennis.mp4"
	AssetClusterImage  = "cluster.gif"
)

// DefaultProjects returns the built-in showcase records.
func DefaultProjects() []Project {
	return []Project{
		{
			ID:          "object-tracking",
			Title:       "Sports Object Tracking AI",
			Description: "Advanced machine learning system that tracks players and balls in sports videos, calculating movement patterns and distances covered.",
			Theme:       "blue-purple",
			Icon:        "activity",
			Technologies: []string{
				"Neural Networks",
				"Computer Vision",
				"Real-time Processing",
			},
			Applications: []string{
				"Sports Analysis",
				"Performance Tracking",
				"Training Optimization",
			},
			KeyFeature: "Frame-by-frame tracking of every player and the ball, with distance and speed derived from the tracks.",
			Demos: []Demo{
				{
					ID:          1,
					Title:       "Soccer Player Tracking",
					Description: "AI tracking of player movements and distance covered during a match",
					Media:       AssetTrackingVideo,
					Kind:        MediaVideo,
					Stats:       Stats{Accuracy: 95, Speed: 80, Implementation: 85},
					Features:    []string{"Player Detection", "Distance Covered", "Movement Heat Maps"},
				},
				{
					ID:          2,
					Title:       "Tennis Ball Trajectory",
					Description: "Real-time ball tracking and speed analysis in tennis matches",
					Media:       AssetTennisVideo,
					Kind:        MediaVideo,
					Stats:       Stats{Accuracy: 92, Speed: 90, Implementation: 75},
					Features:    []string{"Speed Measurement", "Trajectory Prediction", "Spin Analysis"},
				},
				{
					ID:          3,
					Title:       "Multi-Object Tracking",
					Description: "Simultaneous tracking of multiple players and the ball",
					Media:       AssetTrackingVideo,
					Kind:        MediaVideo,
					Stats:       Stats{Accuracy: 88, Speed: 82, Implementation: 70},
					Features:    []string{"Multi-Target Tracking", "Occlusion Handling", "Team Formation Analysis"},
				},
			},
		},
		{
			ID:          "lip-reader",
			Title:       "AI Lip Reader Detection",
			Description: "Cutting-edge lip reading AI that uses pixel clustering to detect and interpret speech from video.",
			Theme:       "green-teal",
			Icon:        "mic",
			Technologies: []string{
				"Pixel Clustering",
				"Deep Learning",
				"Speech Recognition",
			},
			Applications: []string{
				"Accessibility Captioning",
				"Silent Speech Interfaces",
				"Noisy Environment Transcription",
			},
			KeyFeature: "Isolates the lip region by clustering pixels, then reads mouth shapes to recover spoken phrases.",
			Demos: []Demo{
				{
					ID:          1,
					Title:       "Pixel Clustering Demo",
					Description: "Visualization of the pixel clustering algorithm for lip detection",
					Media:       AssetClusterImage,
					Kind:        MediaImage,
					Stats:       Stats{Accuracy: 89, Speed: 78, Implementation: 90},
					Features:    []string{"Pixel Clustering", "Lip Region Detection", "Color Segmentation"},
				},
				{
					ID:          2,
					Title:       "Basic Lip Reading",
					Description: "Detection and interpretation of simple phrases",
					Media:       AssetClusterImage,
					Kind:        MediaImage,
					Stats:       Stats{Accuracy: 84, Speed: 75, Implementation: 65},
					Features:    []string{"Phrase Detection", "Mouth Shape Analysis", "Word Prediction"},
				},
				{
					ID:          3,
					Title:       "Real-time Analysis",
					Description: "Live processing of lip movements for speech recognition",
					Media:       AssetClusterImage,
					Kind:        MediaImage,
					Stats:       Stats{Accuracy: 79, Speed: 88, Implementation: 55},
					Features:    []string{"Live Processing", "Speech Recognition", "Low Latency Pipeline"},
				},
			},
		},
	}
}

// Default builds the built-in catalog. The records are static, so a
// failure here is a programming error.
func Default() *Catalog {
	c, err := New(DefaultProjects())
	if err != nil {
		panic("catalog: invalid defaults: " + err.Error())
	}
	return c
}
