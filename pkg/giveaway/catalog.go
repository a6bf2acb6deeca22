package giveaway

import (
	"fmt"
	"time"

	"github.com/PancyStudios/MysteryBoxGo/pkg/logger"
	"github.com/PancyStudios/MysteryBoxGo/pkg/models"
	"github.com/PancyStudios/MysteryBoxGo/pkg/storage"
)

// AddPrize adds an entry to the global prize catalog.
func (e *Engine) AddPrize(id, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.prizes[id]; exists {
		return ErrDuplicateID
	}
	e.prizes[id] = name

	if err := e.store.Save(storage.CollectionPrizes, e.prizes); err != nil {
		delete(e.prizes, id)
		return fmt.Errorf("persisting prizes: %w", err)
	}

	logger.Info(fmt.Sprintf("Added prize %s: %s", id, name), "Giveaway")
	return nil
}

// RemovePrize deletes a catalog entry and returns its name.
func (e *Engine) RemovePrize(id string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	name, exists := e.prizes[id]
	if !exists {
		return "", ErrNotFound
	}
	delete(e.prizes, id)

	if err := e.store.Save(storage.CollectionPrizes, e.prizes); err != nil {
		e.prizes[id] = name
		return "", fmt.Errorf("persisting prizes: %w", err)
	}

	logger.Info(fmt.Sprintf("Removed prize %s: %s", id, name), "Giveaway")
	return name, nil
}

// Prizes returns a copy of the global catalog.
func (e *Engine) Prizes() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]string, len(e.prizes))
	for k, v := range e.prizes {
		out[k] = v
	}
	return out
}

// AssignPrizes resolves a prize-id spec against the catalog and attaches
// the resolved subset to the giveaway. Returns the assignment and any
// unresolved ids; ErrInvalidInput when nothing resolved.
func (e *Engine) AssignPrizes(giveawayID, spec string) (map[string]string, []string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, ok := e.giveaways[giveawayID]
	if !ok {
		return nil, nil, ErrNotFound
	}
	if g.Ended {
		return nil, nil, ErrAlreadyEnded
	}

	resolved, missing := ResolvePrizeIDs(spec, e.prizes)
	if len(resolved) == 0 {
		return nil, missing, ErrInvalidInput
	}

	oldPrizes := g.AssignedPrizes
	g.AssignedPrizes = resolved

	if err := e.store.Save(storage.CollectionGiveaways, e.giveaways); err != nil {
		g.AssignedPrizes = oldPrizes
		return nil, nil, fmt.Errorf("persisting assignment: %w", err)
	}

	logger.Info(fmt.Sprintf("Assigned %d prizes to giveaway %s", len(resolved), giveawayID), "Giveaway")
	return resolved, missing, nil
}

// CreatePrizeList validates and stores a prize list: the raw body as a
// blob, the metadata in the prize_lists collection. Returns the parsed
// entries plus the lines that were skipped.
func (e *Engine) CreatePrizeList(id, name, createdBy, content string) (map[string]string, []InvalidLine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.prizeLists[id]; exists {
		return nil, nil, ErrDuplicateID
	}

	prizes, invalid := ParsePrizeList(content)
	if len(prizes) == 0 {
		return nil, invalid, ErrInvalidInput
	}

	path, err := e.store.SaveBlob(storage.BlobPrizeLists, id, []byte(content))
	if err != nil {
		return nil, nil, fmt.Errorf("saving prize list body: %w", err)
	}

	e.prizeLists[id] = models.PrizeList{
		Name:       name,
		Path:       path,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().Unix(),
		PrizeCount: len(prizes),
	}

	if err := e.store.Save(storage.CollectionPrizeLists, e.prizeLists); err != nil {
		delete(e.prizeLists, id)
		return nil, nil, fmt.Errorf("persisting prize list: %w", err)
	}

	logger.Info(fmt.Sprintf("Created prize list %s with %d prizes", id, len(prizes)), "Giveaway")
	return prizes, invalid, nil
}

// PrizeLists returns a copy of the prize list metadata.
func (e *Engine) PrizeLists() map[string]models.PrizeList {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]models.PrizeList, len(e.prizeLists))
	for k, v := range e.prizeLists {
		out[k] = v
	}
	return out
}

// PrizeListContent loads the raw body of a stored prize list.
func (e *Engine) PrizeListContent(id string) (string, error) {
	e.mu.Lock()
	if _, ok := e.prizeLists[id]; !ok {
		e.mu.Unlock()
		return "", ErrNotFound
	}
	e.mu.Unlock()

	data, err := e.store.LoadBlob(storage.BlobPrizeLists, id)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RemovePrizeList deletes the metadata and, best effort, the stored body.
func (e *Engine) RemovePrizeList(id string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	meta, exists := e.prizeLists[id]
	if !exists {
		return "", ErrNotFound
	}
	delete(e.prizeLists, id)

	if err := e.store.Save(storage.CollectionPrizeLists, e.prizeLists); err != nil {
		e.prizeLists[id] = meta
		return "", fmt.Errorf("persisting prize lists: %w", err)
	}

	if err := e.store.DeleteBlob(storage.BlobPrizeLists, id); err != nil {
		logger.Error(fmt.Sprintf("Failed to delete prize list body %s: %v", id, err), "Giveaway")
	}

	logger.Info(fmt.Sprintf("Removed prize list %s", id), "Giveaway")
	return meta.Name, nil
}

// AssignPrizeList parses a stored prize list and attaches its entries to
// the giveaway, recording the originating list id.
func (e *Engine) AssignPrizeList(giveawayID, listID string) (map[string]string, string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, ok := e.giveaways[giveawayID]
	if !ok {
		return nil, "", ErrNotFound
	}
	meta, ok := e.prizeLists[listID]
	if !ok {
		return nil, "", ErrNotFound
	}
	if g.Ended {
		return nil, "", ErrAlreadyEnded
	}

	data, err := e.store.LoadBlob(storage.BlobPrizeLists, listID)
	if err != nil {
		return nil, "", fmt.Errorf("loading prize list body: %w", err)
	}

	prizes, _ := ParsePrizeList(string(data))
	if len(prizes) == 0 {
		return nil, "", ErrInvalidInput
	}

	oldPrizes, oldListID := g.AssignedPrizes, g.PrizeListID
	g.AssignedPrizes = prizes
	g.PrizeListID = listID

	if err := e.store.Save(storage.CollectionGiveaways, e.giveaways); err != nil {
		g.AssignedPrizes, g.PrizeListID = oldPrizes, oldListID
		return nil, "", fmt.Errorf("persisting assignment: %w", err)
	}

	logger.Info(fmt.Sprintf("Assigned prize list %s to giveaway %s", listID, giveawayID), "Giveaway")
	return prizes, meta.Name, nil
}

// AddMedia stores a celebration media item: bytes as a blob, metadata in
// the media collection.
func (e *Engine) AddMedia(id, name, uploadedBy string, data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.media[id]; exists {
		return ErrDuplicateID
	}

	path, err := e.store.SaveBlob(storage.BlobMedia, id, data)
	if err != nil {
		return fmt.Errorf("saving media blob: %w", err)
	}

	e.media[id] = models.MediaItem{
		Name:       name,
		Path:       path,
		UploadedBy: uploadedBy,
		UploadedAt: time.Now().Unix(),
	}

	if err := e.store.Save(storage.CollectionMedia, e.media); err != nil {
		delete(e.media, id)
		return fmt.Errorf("persisting media: %w", err)
	}

	logger.Info(fmt.Sprintf("Stored media %s: %s (%d bytes)", id, name, len(data)), "Giveaway")
	return nil
}

// MediaItems returns a copy of the media metadata.
func (e *Engine) MediaItems() map[string]models.MediaItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]models.MediaItem, len(e.media))
	for k, v := range e.media {
		out[k] = v
	}
	return out
}

// MediaBlob loads the stored bytes for a media item.
func (e *Engine) MediaBlob(id string) ([]byte, error) {
	e.mu.Lock()
	if _, ok := e.media[id]; !ok {
		e.mu.Unlock()
		return nil, ErrNotFound
	}
	e.mu.Unlock()

	return e.store.LoadBlob(storage.BlobMedia, id)
}

// AttachMedia references a stored media item from an open giveaway.
func (e *Engine) AttachMedia(giveawayID, mediaID string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, ok := e.giveaways[giveawayID]
	if !ok {
		return "", ErrNotFound
	}
	item, ok := e.media[mediaID]
	if !ok {
		return "", ErrNotFound
	}
	if g.Ended {
		return "", ErrAlreadyEnded
	}

	old := g.CelebrationMedia
	g.CelebrationMedia = mediaID

	if err := e.store.Save(storage.CollectionGiveaways, e.giveaways); err != nil {
		g.CelebrationMedia = old
		return "", fmt.Errorf("persisting attachment: %w", err)
	}

	logger.Info(fmt.Sprintf("Attached media %s to giveaway %s", mediaID, giveawayID), "Giveaway")
	return item.Name, nil
}
