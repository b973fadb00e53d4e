// Package dataset holds the active memory-hard hash dataset behind a
// reference-counted, read-only handle. Hashers lease the dataset for the
// duration of one hash; the loader swaps it with Replace when a new epoch is
// generated. A replaced dataset stays usable by its outstanding leases and is
// closed, if it implements io.Closer, once the last of them is released.
package dataset

import (
	"io"
	"sync"

	"github.com/nrgnet/nrgd/domain/consensus/model"
)

type entry struct {
	dataset model.PowDataset
	refs    int
	retired bool
}

// Holder implements model.DatasetProvider
type Holder struct {
	mtx     sync.Mutex
	current *entry
}

// NewHolder returns a Holder with no active dataset. Until Replace is called
// every hash takes the light path.
func NewHolder() *Holder {
	return &Holder{}
}

// Acquire leases the active dataset. It returns false if none is loaded.
func (h *Holder) Acquire() (model.DatasetLease, bool) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.current == nil {
		return nil, false
	}
	h.current.refs++
	return &Lease{holder: h, entry: h.current}, true
}

// Replace makes dataset the active one. A nil dataset unloads the current
// one.
func (h *Holder) Replace(dataset model.PowDataset) {
	h.mtx.Lock()
	previous := h.current
	if dataset != nil {
		h.current = &entry{dataset: dataset}
		log.Infof("Activated the dataset of epoch %d", dataset.Epoch())
	} else {
		h.current = nil
		log.Infof("Unloaded the active dataset")
	}

	closePrevious := false
	if previous != nil {
		previous.retired = true
		closePrevious = previous.refs == 0
	}
	h.mtx.Unlock()

	if closePrevious {
		closeDataset(previous.dataset)
	}
}

// ActiveEpoch returns the epoch of the active dataset, if any.
func (h *Holder) ActiveEpoch() (uint64, bool) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.current == nil {
		return 0, false
	}
	return h.current.dataset.Epoch(), true
}

func (h *Holder) release(e *entry) {
	h.mtx.Lock()
	e.refs--
	closeRetired := e.retired && e.refs == 0
	h.mtx.Unlock()

	if closeRetired {
		closeDataset(e.dataset)
	}
}

func closeDataset(dataset model.PowDataset) {
	closer, ok := dataset.(io.Closer)
	if !ok {
		return
	}
	err := closer.Close()
	if err != nil {
		log.Warnf("Failed to close the dataset of epoch %d: %s", dataset.Epoch(), err)
		return
	}
	log.Debugf("Closed the dataset of epoch %d", dataset.Epoch())
}

// Lease is a hold on one dataset. It implements model.DatasetLease
type Lease struct {
	holder *Holder
	entry  *entry
	once   sync.Once
}

// Dataset returns the leased dataset. It stays valid until Release.
func (l *Lease) Dataset() model.PowDataset {
	return l.entry.dataset
}

// Release returns the lease. Calls after the first are no-ops.
func (l *Lease) Release() {
	l.once.Do(func() {
		l.holder.release(l.entry)
	})
}
