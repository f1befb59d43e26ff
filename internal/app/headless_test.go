package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/onsi/gomega"
)

func smallConfig() *Config {
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Dots = 48, 32, 200
	return cfg
}

func TestRunHeadless(t *testing.T) {
	g := gomega.NewWithT(t)
	cfg := smallConfig()
	res, err := RunHeadless(context.Background(), cfg, HeadlessOptions{
		Frames: 10,
		Step:   16 * time.Millisecond,
		Clicks: []Click{{X: 24, Y: 16, Frame: 2}},
	})
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(res.Frames).To(gomega.Equal(10))
	g.Expect(res.Remaining).To(gomega.HaveLen(10))
	g.Expect(res.Image.Bounds().Dx()).To(gomega.Equal(48))
	g.Expect(res.Image.Bounds().Dy()).To(gomega.Equal(32))
	g.Expect(res.Throughput.Count).To(gomega.BeNumerically("<=", 10))
	for _, n := range res.Remaining {
		g.Expect(n).To(gomega.BeNumerically("<=", 200))
	}

	report := Report(cfg, res)
	g.Expect(report).To(gomega.ContainSubstring("48x32"))
	g.Expect(report).To(gomega.ContainSubstring("remaining dots per frame"))
}

func TestRunHeadlessPoints(t *testing.T) {
	g := gomega.NewWithT(t)
	cfg := smallConfig()
	cfg.Strategy = "points"
	res, err := RunHeadless(context.Background(), cfg, HeadlessOptions{Frames: 3})
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(res.Frames).To(gomega.Equal(3))
}

func TestRunHeadlessCancelled(t *testing.T) {
	g := gomega.NewWithT(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := RunHeadless(ctx, smallConfig(), HeadlessOptions{Frames: 5})
	g.Expect(errors.Is(err, context.Canceled)).To(gomega.BeTrue())
	g.Expect(res).NotTo(gomega.BeNil())
	g.Expect(res.Frames).To(gomega.Equal(0))
}

func TestRunHeadlessInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Strategy = "webgl"
	if _, err := RunHeadless(context.Background(), cfg, HeadlessOptions{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestParseClick(t *testing.T) {
	c, err := ParseClick("10, 20@3")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Click{X: 10, Y: 20, Frame: 3}) {
		t.Fatalf("click = %+v", c)
	}
	c, err = ParseClick("1.5,2")
	if err != nil || c.X != 1.5 || c.Y != 2 || c.Frame != 0 {
		t.Fatalf("click = %+v, err = %v", c, err)
	}
	for _, bad := range []string{"", "1", "a,b", "1,2@x", "1,2@-1", "1,2,3"} {
		if _, err := ParseClick(bad); err == nil {
			t.Fatalf("ParseClick(%q) should fail", bad)
		} else if strings.TrimSpace(err.Error()) == "" {
			t.Fatalf("empty error for %q", bad)
		}
	}
}
