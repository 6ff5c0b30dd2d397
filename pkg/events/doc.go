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

/*
Package events publishes menu change events.

NotifyingStore decorates a menu.Store and, after every successful
mutation, emits one Event through a Publisher:

	menu.item.created   after Insert
	menu.item.updated   after UpdateByID
	menu.item.deleted   after DeleteByID

Publishing is synchronous and best effort. A failed publish is logged and
counted in menu_events_published_total{result="error"}; the mutation
itself still succeeds.

KafkaPublisher writes events as JSON messages keyed by item id, so all
events of one item land in the same partition in order.
*/
package events
