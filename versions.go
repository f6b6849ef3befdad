// Copyright (C) 2025 Solpipe Project
//
// This file is part of solpipe-go.
//
// solpipe-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// solpipe-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with solpipe-go.  If not, see <https://www.gnu.org/licenses/>.

// Package solpipe provides version information for solpipe-go and the
// backend API it speaks to.
package solpipe

const (
	// Version is the current version of solpipe-go
	Version = "0.3.0"

	// APIVersion is the Solpipe backend API generation this library targets
	APIVersion = "v1"

	// MinBackendVersion is the minimum backend version compatible with this library
	MinBackendVersion = "0.2.0"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	SolpipeGoVersion  string
	APIVersion        string
	MinBackendVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SolpipeGoVersion:  Version,
		APIVersion:        APIVersion,
		MinBackendVersion: MinBackendVersion,
	}
}
