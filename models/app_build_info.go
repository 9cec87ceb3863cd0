// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected through linker flags and
// shown by the client's "about" overlay.
type AppBuildInfo struct {
	appName string
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as
// "N/A" by the accessors.
func NewAppBuildInfo(appName, version, date, commit string) AppBuildInfo {
	return AppBuildInfo{appName: appName, version: version, date: date, commit: commit}
}

func (a AppBuildInfo) AppName() string      { return orNA(a.appName) }
func (a AppBuildInfo) BuildVersion() string { return orNA(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNA(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNA(a.commit) }

func orNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
