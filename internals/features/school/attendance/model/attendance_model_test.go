package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentEntriesMerge(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	existing := StudentEntries{
		{StudentID: a, Status: EntryPresent},
		{StudentID: b, Status: EntryAbsent},
	}

	t.Run("entri masuk menimpa per siswa", func(t *testing.T) {
		out := existing.Merge(StudentEntries{{StudentID: b, Status: EntryLate}})
		require.Len(t, out, 2)
		assert.Equal(t, EntryPresent, out[0].Status)
		assert.Equal(t, EntryLate, out[1].Status)
	})

	t.Run("siswa baru menempel di belakang", func(t *testing.T) {
		out := existing.Merge(StudentEntries{{StudentID: c, Status: EntryOnLeave}})
		require.Len(t, out, 3)
		assert.Equal(t, c, out[2].StudentID)
	})

	t.Run("urutan lama dipertahankan", func(t *testing.T) {
		out := existing.Merge(StudentEntries{
			{StudentID: b, Status: EntryLate},
			{StudentID: a, Status: EntryAbsent},
		})
		require.Len(t, out, 2)
		assert.Equal(t, a, out[0].StudentID)
		assert.Equal(t, b, out[1].StudentID)
	})

	t.Run("merge tidak memodifikasi slice asal", func(t *testing.T) {
		_ = existing.Merge(StudentEntries{{StudentID: a, Status: EntryAbsent}})
		assert.Equal(t, EntryPresent, existing[0].Status)
	})

	t.Run("flag koreksi ikut tertimpa saat resubmit", func(t *testing.T) {
		cid := uuid.New()
		reason := "salah input"
		corrected := StudentEntries{
			{StudentID: a, Status: EntryAbsent, Corrected: true, CorrectionID: &cid, CorrectionReason: &reason},
		}
		out := corrected.Merge(StudentEntries{{StudentID: a, Status: EntryPresent}})
		require.Len(t, out, 1)
		assert.False(t, out[0].Corrected)
		assert.Nil(t, out[0].CorrectionID)
	})
}

func TestStudentEntriesFind(t *testing.T) {
	a := uuid.New()
	entries := StudentEntries{{StudentID: a, Status: EntryPresent}}

	got := entries.Find(a)
	require.NotNil(t, got)
	assert.Equal(t, EntryPresent, got.Status)

	assert.Nil(t, entries.Find(uuid.New()))
}

func TestValidEntryStatus(t *testing.T) {
	for _, s := range []string{EntryPresent, EntryAbsent, EntryLeave, EntryLate, EntryHalfDay, EntryOnLeave} {
		assert.True(t, ValidEntryStatus(s), s)
	}
	assert.False(t, ValidEntryStatus("PRESENT"))
	assert.False(t, ValidEntryStatus(""))
}
