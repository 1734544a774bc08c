package service

import "encoding/json"

type MemoryService struct {
	Slots map[string][]byte
}

func NewMemoryService() *MemoryService {
	return &MemoryService{
		Slots: make(map[string][]byte),
	}
}

func (s *MemoryService) NewStore(id string, subIDs ...string) Store {
	key := id
	for _, subID := range subIDs {
		key += ":" + subID
	}

	return &MemoryStore{
		Key:     key,
		service: s,
	}
}

type MemoryStore struct {
	Key     string
	service *MemoryService
}

func (store *MemoryStore) Save(val interface{}) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}

	store.service.Slots[store.Key] = data
	return nil
}

func (store *MemoryStore) Load(val interface{}) error {
	data, ok := store.service.Slots[store.Key]
	if !ok {
		return ErrPersistenceNotExists
	}

	return json.Unmarshal(data, val)
}

func (store *MemoryStore) Reset() error {
	delete(store.service.Slots, store.Key)
	return nil
}
