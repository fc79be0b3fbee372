package splash

import (
	"time"

	"github.com/Zachkp/cosmic-portfolio/internal/anim"
)

// DefaultTimeline is the black hole entry sequence: the captions and star
// field fade, the ship cursor dives into the event horizon, the horizon
// swells and collapses over the screen, and the container fades out.
func DefaultTimeline() []anim.Step {
	return []anim.Step{
		{
			Name:     "fade-captions",
			Target:   "caption",
			Duration: 500 * time.Millisecond,
			Position: anim.At(0),
			Ease:     "power2.inOut",
			Props:    map[string]float64{"opacity": 0, "y": -20},
		},
		{
			Name:     "fade-starfield",
			Target:   "starfield",
			Duration: 800 * time.Millisecond,
			Position: anim.With(0),
			Ease:     "power2.inOut",
			Props:    map[string]float64{"opacity": 0},
		},
		{
			Name:     "cursor-dive",
			Target:   "cursor",
			Duration: 2 * time.Second,
			Position: anim.At(-300 * time.Millisecond),
			Ease:     "power3.in",
			Props:    map[string]float64{"scale": 0, "rotation": 720},
		},
		{
			Name:     "horizon-swell",
			Target:   "black-hole",
			Duration: 500 * time.Millisecond,
			Position: anim.With(500 * time.Millisecond),
			Ease:     "power2.out",
			Props:    map[string]float64{"scale": 1.5},
		},
		{
			Name:     "horizon-collapse",
			Target:   "black-hole",
			Duration: 2500 * time.Millisecond,
			Position: anim.At(0),
			Ease:     "power4.in",
			Props:    map[string]float64{"scale": 80, "rotation": 1080},
		},
		{
			Name:     "fade-container",
			Target:   "container",
			Duration: time.Second,
			Position: anim.At(-500 * time.Millisecond),
			Ease:     "power2.inOut",
			Props:    map[string]float64{"opacity": 0},
		},
	}
}
