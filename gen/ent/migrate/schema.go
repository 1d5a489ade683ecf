// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExamplesColumns holds the columns for the "examples" table.
	ExamplesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "layout_hash", Type: field.TypeString, Nullable: true},
		{Name: "ir_json", Type: field.TypeJSON},
		{Name: "desired_output", Type: field.TypeJSON},
		{Name: "synthesis_report", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processor_id", Type: field.TypeUUID},
	}
	// ExamplesTable holds the schema information for the "examples" table.
	ExamplesTable = &schema.Table{
		Name:       "examples",
		Columns:    ExamplesColumns,
		PrimaryKey: []*schema.Column{ExamplesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "examples_processors_examples",
				Columns:    []*schema.Column{ExamplesColumns[7]},
				RefColumns: []*schema.Column{ProcessorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "example_processor_id",
				Unique:  false,
				Columns: []*schema.Column{ExamplesColumns[7]},
			},
			{
				Name:    "example_layout_hash",
				Unique:  false,
				Columns: []*schema.Column{ExamplesColumns[2]},
			},
		},
	}
	// ExtractionsColumns holds the columns for the "extractions" table.
	ExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "ir_method", Type: field.TypeString, Nullable: true},
		{Name: "layout_hash", Type: field.TypeString, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "band", Type: field.TypeString, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "processor_id", Type: field.TypeUUID},
	}
	// ExtractionsTable holds the schema information for the "extractions" table.
	ExtractionsTable = &schema.Table{
		Name:       "extractions",
		Columns:    ExtractionsColumns,
		PrimaryKey: []*schema.Column{ExtractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extractions_processors_extractions",
				Columns:    []*schema.Column{ExtractionsColumns[16]},
				RefColumns: []*schema.Column{ProcessorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extraction_processor_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[16], ExtractionsColumns[3], ExtractionsColumns[13]},
			},
			{
				Name:    "extraction_band",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[9]},
			},
			{
				Name:    "extraction_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[13]},
			},
		},
	}
	// ProcessorsColumns holds the columns for the "processors" table.
	ProcessorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "layout_hash", Type: field.TypeString, Nullable: true},
		{Name: "rules", Type: field.TypeJSON},
		{Name: "template", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "success_count", Type: field.TypeInt, Default: 0},
		{Name: "failure_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProcessorsTable holds the schema information for the "processors" table.
	ProcessorsTable = &schema.Table{
		Name:       "processors",
		Columns:    ProcessorsColumns,
		PrimaryKey: []*schema.Column{ProcessorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processor_name_version",
				Unique:  true,
				Columns: []*schema.Column{ProcessorsColumns[1], ProcessorsColumns[3]},
			},
			{
				Name:    "processor_layout_hash",
				Unique:  false,
				Columns: []*schema.Column{ProcessorsColumns[4]},
			},
			{
				Name:    "processor_document_type",
				Unique:  false,
				Columns: []*schema.Column{ProcessorsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExamplesTable,
		ExtractionsTable,
		ProcessorsTable,
	}
)

func init() {
	ExamplesTable.ForeignKeys[0].RefTable = ProcessorsTable
	ExamplesTable.Annotation = &entsql.Annotation{
		Table: "examples",
	}
	ExtractionsTable.ForeignKeys[0].RefTable = ProcessorsTable
	ExtractionsTable.Annotation = &entsql.Annotation{
		Table: "extractions",
	}
	ProcessorsTable.Annotation = &entsql.Annotation{
		Table: "processors",
	}
}
