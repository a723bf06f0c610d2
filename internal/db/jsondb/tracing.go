// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package jsondb

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/vbhvn08/premier-inn/internal/db/jsondb")
