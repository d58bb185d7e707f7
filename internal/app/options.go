// Package app wires configuration, the scroll engine and the page store into
// ready-to-drive surfaces for the CLI and the terminal UI.
package app

import (
	"time"

	"github.com/cristianoliveira/glide/internal/animate"
	"github.com/cristianoliveira/glide/internal/config"
	"github.com/cristianoliveira/glide/internal/ease"
	"github.com/cristianoliveira/glide/internal/scroller"
	"github.com/cristianoliveira/glide/internal/slide"
)

// ScrollerOptions resolves the loaded configuration into scroller options.
// The mousewheel channels are always declared so paging can claim them.
func ScrollerOptions() scroller.Options {
	opts := scroller.DefaultOptions()
	opts.ScrollX = config.GetBool("scroll_x", true)
	opts.ScrollY = config.GetBool("scroll_y", false)
	if probe, ok := animate.ParseProbe(config.Get("probe_type", "normal")); ok {
		opts.Probe = probe
	}
	opts.Bounce = config.GetBool("bounce", opts.Bounce)
	opts.BounceTime = millis("bounce_time", opts.BounceTime)
	opts.Momentum = config.GetBool("momentum", opts.Momentum)
	opts.MomentumLimitTime = millis("momentum_limit_time", opts.MomentumLimitTime)
	opts.MomentumLimitDistance = config.GetFloat("momentum_limit_distance", opts.MomentumLimitDistance)
	opts.Deceleration = config.GetFloat("deceleration", opts.Deceleration)
	opts.SwipeTime = millis("swipe_time", opts.SwipeTime)
	opts.SwipeBounceTime = millis("swipe_bounce_time", opts.SwipeBounceTime)
	opts.FlickLimitTime = millis("flick_limit_time", opts.FlickLimitTime)
	opts.FlickLimitDistance = config.GetFloat("flick_limit_distance", opts.FlickLimitDistance)
	opts.MouseWheel = true
	return opts
}

// SlideOptions resolves the loaded configuration into paging options.
func SlideOptions() slide.Options {
	opts := slide.DefaultOptions()
	opts.Loop = config.GetBool("slide_loop", opts.Loop)
	opts.Threshold = config.GetFloat("slide_threshold", opts.Threshold)
	opts.Speed = millis("slide_speed", 0)
	opts.SnapTime = millis("slide_snap_time", opts.SnapTime)
	if e, ok := ease.Lookup(config.Get("slide_easing", "bounce")); ok {
		opts.Easing = e
	}
	opts.StartPageX = config.GetInt("slide_start_page_x", 0)
	opts.StartPageY = config.GetInt("slide_start_page_y", 0)
	return opts
}

// FrameInterval is the time between frame ticks.
func FrameInterval() time.Duration {
	return millis("frame_interval", 16*time.Millisecond)
}

// StatusFormat is the status line preset name or template.
func StatusFormat() string {
	return config.Get("status_format", "default")
}

// UseTransform reports whether surfaces render through the transform strategy.
func UseTransform() bool {
	return config.GetBool("use_transform", true)
}

func millis(key string, fallback time.Duration) time.Duration {
	n := config.GetInt(key, -1)
	if n < 0 {
		return fallback
	}
	return time.Duration(n) * time.Millisecond
}
