// Package rop holds Result[T], the success-or-failure value passed along the
// judge's evaluation track. Every Result carries a uuid and a UTC creation time.
package rop
