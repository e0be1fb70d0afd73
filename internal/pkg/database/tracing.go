// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/hariprasad1114/codemaster/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给每一次数据库操作创建一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return newGormTracingPlugin(otel.GetTracerProvider())
}

func newGormTracingPlugin(tp trace.TracerProvider) *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: tp.Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

type register func(name string, fn func(*gorm.DB)) error

// Initialize 在 gorm 的增删改查以及原生 SQL 前后注册回调
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	operations := []struct {
		name      string
		operation string
		before    register
		after     register
	}{
		{
			name:      "query",
			operation: "SELECT",
			before:    cb.Query().Before("gorm:query").Register,
			after:     cb.Query().After("gorm:query").Register,
		},
		{
			name:      "create",
			operation: "INSERT",
			before:    cb.Create().Before("gorm:create").Register,
			after:     cb.Create().After("gorm:create").Register,
		},
		{
			name:      "update",
			operation: "UPDATE",
			before:    cb.Update().Before("gorm:update").Register,
			after:     cb.Update().After("gorm:update").Register,
		},
		{
			name:      "delete",
			operation: "DELETE",
			before:    cb.Delete().Before("gorm:delete").Register,
			after:     cb.Delete().After("gorm:delete").Register,
		},
		{
			name:      "row",
			operation: "SELECT",
			before:    cb.Row().Before("gorm:row").Register,
			after:     cb.Row().After("gorm:row").Register,
		},
		{
			name:      "raw",
			operation: "RAW",
			before:    cb.Raw().Before("gorm:raw").Register,
			after:     cb.Raw().After("gorm:raw").Register,
		},
	}
	for _, op := range operations {
		if err := op.before("tracing:before_"+op.name, p.before(op.operation)); err != nil {
			return err
		}
		if err := op.after("tracing:after_"+op.name, p.after(op.operation)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		spanName := "SQL " + operation
		if db.Statement.Table != "" {
			spanName = db.Statement.Table + " " + operation
		}
		ctx, span := p.tracer.Start(db.Statement.Context, spanName,
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		span.SetAttributes(attributesOf(db, operation)...)
		// 查不到数据不算错误
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}

func attributesOf(db *gorm.DB, operation string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("db.system", db.Dialector.Name()),
		attribute.String("db.operation", operation),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	}
	table := db.Statement.Table
	if db.Statement.Schema != nil {
		table = db.Statement.Schema.Table
	}
	if table != "" {
		attrs = append(attrs, attribute.String("db.table", table))
	}
	if sql := db.Statement.SQL.String(); sql != "" {
		attrs = append(attrs, attribute.String("db.statement", sql))
	}
	return attrs
}
