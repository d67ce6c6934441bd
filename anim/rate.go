package anim

import (
	"github.com/fogleman/ease"
)

// RateFunc remaps linear time-progress before it reaches an evaluator,
// e.g. an easing curve. It should map [0, 1] onto [0, 1].
type RateFunc func(t float64) float64

// Linear is the identity rate function.
func Linear(t float64) float64 {
	return t
}

// Smooth is the manim-style smoothstep; it is the default rate function
// of the built-in animations.
func Smooth(t float64) float64 {
	s := 1.0 - t
	return t * t * t * (10.0*s*s + 5.0*s*t + t*t)
}

// Easing curves from the ease package, usable as rate functions.
var (
	EaseInQuad     RateFunc = ease.InQuad
	EaseOutQuad    RateFunc = ease.OutQuad
	EaseInOutQuad  RateFunc = ease.InOutQuad
	EaseInCubic    RateFunc = ease.InCubic
	EaseOutCubic   RateFunc = ease.OutCubic
	EaseInOutCubic RateFunc = ease.InOutCubic
	EaseInSine     RateFunc = ease.InSine
	EaseOutSine    RateFunc = ease.OutSine
	EaseInOutSine  RateFunc = ease.InOutSine
	EaseOutElastic RateFunc = ease.OutElastic
	EaseOutBounce  RateFunc = ease.OutBounce
)
