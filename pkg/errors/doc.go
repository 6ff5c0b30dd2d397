// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// The menu service reports three classes of failure:
//
//   - ErrCodeInvalidRequest: malformed, missing or out-of-range input fields
//   - ErrCodeNotFound: no menu item exists for the given id
//   - ErrCodeStorage: the storage backend is unreachable or failed an I/O call
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeStorage,
//	    "failed to load menu items",
//	    cause,
//	    map[string]any{
//	        "operation": "find_all",
//	    },
//	)
package errors
