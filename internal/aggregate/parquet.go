package aggregate

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
)

// readParquetRows decodes a whole parquet payload into one map per row,
// keyed by column name, with values reduced to string, bool, int64,
// float64, time.Time, or nil.
func readParquetRows(ctx context.Context, data []byte) ([]map[string]any, error) {
	pf, err := file.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parquet open: %w", err)
	}
	defer pf.Close()

	arrowReader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, fmt.Errorf("parquet arrow reader: %w", err)
	}

	var rows []map[string]any
	for g := 0; g < pf.NumRowGroups(); g++ {
		rgReader, err := arrowReader.GetRecordReader(ctx, nil, []int{g})
		if err != nil {
			return nil, fmt.Errorf("parquet row group %d: %w", g, err)
		}

		for rgReader.Next() {
			rec := rgReader.Record()
			for i := 0; i < int(rec.NumRows()); i++ {
				row := make(map[string]any, int(rec.NumCols()))
				for c := 0; c < int(rec.NumCols()); c++ {
					row[rec.ColumnName(c)] = cellValue(rec.Column(c), i)
				}
				rows = append(rows, row)
			}
		}

		err = rgReader.Err()
		rgReader.Release()
		if err != nil {
			return nil, fmt.Errorf("parquet read row group %d: %w", g, err)
		}
	}

	return rows, nil
}

func cellValue(col arrow.Array, i int) any {
	if col.IsNull(i) {
		return nil
	}

	switch c := col.(type) {
	case *array.String:
		return c.Value(i)
	case *array.Boolean:
		return c.Value(i)
	case *array.Int32:
		return int64(c.Value(i))
	case *array.Int64:
		return c.Value(i)
	case *array.Float32:
		return float64(c.Value(i))
	case *array.Float64:
		return c.Value(i)
	case *array.Date32:
		return c.Value(i).ToTime()
	case *array.Timestamp:
		tsType := c.DataType().(*arrow.TimestampType)
		return c.Value(i).ToTime(tsType.Unit)
	default:
		return col.ValueStr(i)
	}
}

// rowFloat reads a numeric cell, tolerating int-typed columns.
func rowFloat(row map[string]any, key string) (float64, bool) {
	switch v := row[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func rowInt(row map[string]any, key string) (int64, bool) {
	switch v := row[key].(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	}
	return 0, false
}

// rowTime reads a date cell stored either as a native timestamp/date
// column or as a YYYY-MM-DD string.
func rowTime(row map[string]any, key string) (time.Time, bool) {
	switch v := row[key].(type) {
	case time.Time:
		return v.UTC(), true
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

func rowString(row map[string]any, key string) string {
	switch v := row[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
