package engine

import "testing"

func TestPreviewRowCountAcrossRange(t *testing.T) {
	ds := testDataset() // 13 rows

	for n := RowsMin; n <= RowsMax; n += RowsStep {
		st := defaultState(ds)
		st.Rows = n
		spec := Preview(ds, st.Normalize(ds))

		assertKind(t, spec, KindTable)
		want := n
		if want > ds.Len() {
			want = ds.Len()
		}
		if len(spec.Table.Rows) != want {
			t.Errorf("rows=%d: got %d body rows, want %d", n, len(spec.Table.Rows), want)
		}
	}
}

func TestPreviewHeadersAndOrder(t *testing.T) {
	ds := testDataset()
	st := defaultState(ds)
	st.Rows = 10
	spec := Preview(ds, st)

	wantCols := []string{"country", "year", "pop", "continent", "lifeExp", "gdpPercap"}
	if len(spec.Table.Columns) != len(wantCols) {
		t.Fatalf("columns = %v", spec.Table.Columns)
	}
	for i, c := range wantCols {
		assertEqual(t, spec.Table.Columns[i], c, "column order")
	}

	// Rows 0..9 of the dataset, in load order.
	records := ds.Records()
	for i, row := range spec.Table.Rows {
		assertEqual(t, row[0], records[i].Country, "row country order")
		assertEqual(t, row[3], records[i].Continent, "row continent order")
	}

	// Spot-check cell formatting on the first row.
	first := spec.Table.Rows[0]
	assertEqual(t, first[1], "1997", "year cell")
	assertEqual(t, first[2], "125956499", "pop cell")
	assertEqual(t, first[4], "80.69", "lifeExp cell")
}

func TestPreviewClampsRowCount(t *testing.T) {
	ds := testDataset()

	cases := []struct{ in, want int }{
		{0, RowsMin},
		{3, RowsMin},
		{7, 5},   // snapped down to the step
		{23, 20}, // snapped down to the step
		{50, 50},
		{999, RowsMax},
	}
	for _, c := range cases {
		st := WidgetState{Rows: c.in}.Normalize(ds)
		assertEqual(t, st.Rows, c.want, "clamped rows")
	}
}

func TestPreviewPure(t *testing.T) {
	ds := testDataset()
	st := defaultState(ds)

	a := Preview(ds, st)
	b := Preview(ds, st)
	if &a.Table.Rows == &b.Table.Rows {
		t.Fatal("handler reused output across invocations")
	}
	if len(a.Table.Rows) != len(b.Table.Rows) {
		t.Fatal("same inputs produced different outputs")
	}
	assertEqual(t, ds.Len(), len(testRecordSlice()), "dataset mutated by handler")
}
