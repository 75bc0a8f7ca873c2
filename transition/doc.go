// Package transition animates node inputs between two states.
//
// A Driver holds a list of Definitions, each naming a property of one
// element and its value in the "off" (From) and "on" (To) states.
// SwitchState either jumps to the new state or starts tweens that Step
// advances, marking the animated node dirty on every change so the
// scheduler relays it out on the same tick.
package transition
