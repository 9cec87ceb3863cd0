// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the client's authoritative session state: whether a
// bearer credential is held and, once fetched, whose it is.
//
// [Controller] is the single writer of [State]. Every change of
// State.Authenticated is a transition: it bumps a generation counter and, when
// the session becomes authenticated, starts a profile fetch tagged with that
// generation. A result whose generation is no longer current is dropped, so a
// late profile can never resurrect a logged-out session and a late failure can
// never log out a newer one.
//
// Authenticated is true as soon as a credential is stored, before the profile
// arrives. Observers therefore see {Authenticated: true, User: nil} for the
// duration of the fetch.
package session
