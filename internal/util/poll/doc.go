// Package poll drives a remote resource toward a target state by observing it
// at a fixed interval.
//
// A [Machine] maps each observed state to a [Transition]: run an action and
// observe again, wait one interval, or finish. States without a transition are
// logged and polled again after a wait. [Until] runs a machine to completion.
//
// Action failures are logged and polling continues, unless the action wraps its
// error with [Fatal], which stops the loop.
package poll
