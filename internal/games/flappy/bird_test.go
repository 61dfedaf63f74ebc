package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestBirdFreeFall(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g := cfg.Physics.Gravity

	for _, n := range []int{1, 10, 60} {
		b := NewBird(100, 0, &cfg)
		for i := 0; i < n; i++ {
			b.Tick()
		}

		wantVel := float64(n) * g
		wantY := g * float64(n*(n+1)) / 2
		if math.Abs(b.VelY-wantVel) > 1e-9 {
			t.Errorf("after %d ticks VelY = %f, expected %f", n, b.VelY, wantVel)
		}
		if math.Abs(b.Y-wantY) > 1e-9 {
			t.Errorf("after %d ticks Y = %f, expected %f", n, b.Y, wantY)
		}
	}
}

func TestBirdFlapOverwritesVelocity(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	once := NewBird(100, 300, &cfg)
	once.VelY = 7.5
	once.Flap()

	twice := NewBird(100, 300, &cfg)
	twice.VelY = -3
	twice.Flap()
	twice.Flap()

	if once.VelY != cfg.Physics.FlapImpulse {
		t.Errorf("Flap VelY = %f, expected %f", once.VelY, cfg.Physics.FlapImpulse)
	}
	if twice.VelY != once.VelY {
		t.Errorf("double Flap VelY = %f, expected %f", twice.VelY, once.VelY)
	}

	// Next tick reflects the impulse immediately
	once.Tick()
	if want := 300 + cfg.Physics.FlapImpulse + cfg.Physics.Gravity; once.Y != want {
		t.Errorf("Y after flap tick = %f, expected %f", once.Y, want)
	}
}

func TestBirdBounds(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := NewBird(100, 349.75, &cfg)

	r := b.Bounds()
	if r.X != 100 || r.Y != 349 || r.W != cfg.Player.Width || r.H != cfg.Player.Height {
		t.Errorf("Bounds() = %+v, expected {100 349 50 40}", r)
	}

	b.Y = -0.5
	if got := b.Bounds().Y; got != -1 {
		t.Errorf("Bounds().Y for Y=-0.5 = %d, expected -1 (floor)", got)
	}
}
