/*
Copyright 2025 Kubotal

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package httpsrv hosts an http server implementation suitable for an
// orchestrator-managed, disposable process:
// - Start(ctx) binds once and serves until the context is cancelled, then drains gracefully
// - Bind failure is returned to the caller, which is expected to exit non-zero (no retry)
// - Optional cap on concurrent connections (netutil.LimitListener)
// - Log using "github.com/go-logr/logr" package
// Note the main router is a parameter, thus letting mux (http.ServeMux, Gorilla, httprouter, chi, flow,...) choice to the caller.
package httpsrv
