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

package client

import (
	"context"
	"encoding/json"

	"github.com/solpipe-project/solpipe-go/pkg/apierr"
)

const pipelineCreatePath = "/api/pipeline/create"

// PipelineService creates pipeline resources on the backend.
type PipelineService struct {
	client *Client
}

// PipelineConfig describes the pipeline to create. The wire contract is
// open-ended: Name is required, Description optional, and anything in
// Extra travels to the backend verbatim alongside them.
type PipelineConfig struct {
	Name        string
	Description string
	Extra       map[string]any
}

// MarshalJSON flattens the config into a single JSON object: the Extra
// fields first, then the typed fields, so Name and Description always win
// a key collision.
func (c PipelineConfig) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(c.Extra)+2)
	for k, v := range c.Extra {
		obj[k] = v
	}
	obj["name"] = c.Name
	if c.Description != "" {
		obj["description"] = c.Description
	}
	return json.Marshal(obj)
}

// PipelineResult is the backend's view of a created pipeline. ID and
// Status are required; any other field the backend sent is preserved in
// Extra.
type PipelineResult struct {
	ID     string
	Status string
	Extra  map[string]any
}

// UnmarshalJSON splits the response object into the required fields and
// the pass-through bag.
func (r *PipelineResult) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = PipelineResult{}
	if id, ok := obj["id"].(string); ok {
		r.ID = id
		delete(obj, "id")
	}
	if status, ok := obj["status"].(string); ok {
		r.Status = status
		delete(obj, "status")
	}
	if len(obj) > 0 {
		r.Extra = obj
	}
	return nil
}

// Create submits the pipeline config and returns the created resource.
//
// Fails with a Validation error before any request when Name is empty.
// The response must be a JSON object with non-empty id and status strings;
// extra response fields are passed through untouched.
func (s *PipelineService) Create(ctx context.Context, cfg PipelineConfig) (*PipelineResult, error) {
	if cfg.Name == "" {
		return nil, apierr.NewValidation("pipeline name is required")
	}

	body, err := s.client.tr.Post(ctx, s.client.url(pipelineCreatePath), cfg, nil)
	if err != nil {
		return nil, err
	}

	if _, err := parseObject(body); err != nil {
		return nil, err
	}

	var result PipelineResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apierr.WrapValidation("malformed pipeline response", err)
	}
	if result.ID == "" {
		return nil, apierr.NewValidation("pipeline id missing from response")
	}
	if result.Status == "" {
		return nil, apierr.NewValidation("pipeline status missing from response")
	}
	return &result, nil
}
