package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the domain records. The record set is
// small and stable, so the serializers are maintained by hand rather than
// generated.

var (
	// IDMUS serializes ID values.
	IDMUS = idMUS{}
	// ItemMUS serializes Item records.
	ItemMUS = itemMUS{}
	// RegionMUS serializes Region records.
	RegionMUS = regionMUS{}

	stringsMUS = ord.NewSliceSer[string](ord.String)
	timeMUS    = timeMicroMUS{}
)

var (
	_ mus.Serializer[ID]     = IDMUS
	_ mus.Serializer[Item]   = ItemMUS
	_ mus.Serializer[Region] = RegionMUS
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// timeMicroMUS serializes timestamps as Unix-microsecond varints.
type timeMicroMUS struct{}

func (timeMicroMUS) Marshal(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func (timeMicroMUS) Unmarshal(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func (timeMicroMUS) Size(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}

func (timeMicroMUS) Skip(bs []byte) (int, error) {
	return varint.Int64.Skip(bs)
}

type itemMUS struct{}

func (itemMUS) Marshal(item Item, bs []byte) (n int) {
	n = IDMUS.Marshal(item.Id, bs)
	n += ord.String.Marshal(item.Name, bs[n:])
	n += ord.String.Marshal(item.Description, bs[n:])
	n += ord.String.Marshal(item.Location, bs[n:])
	n += stringsMUS.Marshal([]string(item.Types), bs[n:])
	n += stringsMUS.Marshal([]string(item.Tags), bs[n:])
	n += timeMUS.Marshal(item.InsertedAt, bs[n:])
	n += timeMUS.Marshal(item.UpdatedAt, bs[n:])
	return n
}

func (itemMUS) Unmarshal(bs []byte) (item Item, n int, err error) {
	var n1 int
	if item.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if item.Name, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return item, n + n1, err
	}
	n += n1
	if item.Description, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return item, n + n1, err
	}
	n += n1
	if item.Location, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return item, n + n1, err
	}
	n += n1
	var labels []string
	if labels, n1, err = stringsMUS.Unmarshal(bs[n:]); err != nil {
		return item, n + n1, err
	}
	item.Types = Labels(labels)
	n += n1
	if labels, n1, err = stringsMUS.Unmarshal(bs[n:]); err != nil {
		return item, n + n1, err
	}
	item.Tags = Labels(labels)
	n += n1
	if item.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return item, n + n1, err
	}
	n += n1
	if item.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return item, n + n1, err
	}
	n += n1
	return item, n, nil
}

func (itemMUS) Size(item Item) int {
	return IDMUS.Size(item.Id) +
		ord.String.Size(item.Name) +
		ord.String.Size(item.Description) +
		ord.String.Size(item.Location) +
		stringsMUS.Size([]string(item.Types)) +
		stringsMUS.Size([]string(item.Tags)) +
		timeMUS.Size(item.InsertedAt) +
		timeMUS.Size(item.UpdatedAt)
}

func (itemMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	for i := 0; i < 2; i++ {
		if n1, err = stringsMUS.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	for i := 0; i < 2; i++ {
		if n1, err = timeMUS.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}

type regionMUS struct{}

func (regionMUS) Marshal(region Region, bs []byte) (n int) {
	n = IDMUS.Marshal(region.Id, bs)
	n += ord.String.Marshal(region.Name, bs[n:])
	n += stringsMUS.Marshal(region.Settlements, bs[n:])
	n += timeMUS.Marshal(region.InsertedAt, bs[n:])
	n += timeMUS.Marshal(region.UpdatedAt, bs[n:])
	return n
}

func (regionMUS) Unmarshal(bs []byte) (region Region, n int, err error) {
	var n1 int
	if region.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if region.Name, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return region, n + n1, err
	}
	n += n1
	if region.Settlements, n1, err = stringsMUS.Unmarshal(bs[n:]); err != nil {
		return region, n + n1, err
	}
	n += n1
	if region.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return region, n + n1, err
	}
	n += n1
	if region.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return region, n + n1, err
	}
	n += n1
	return region, n, nil
}

func (regionMUS) Size(region Region) int {
	return IDMUS.Size(region.Id) +
		ord.String.Size(region.Name) +
		stringsMUS.Size(region.Settlements) +
		timeMUS.Size(region.InsertedAt) +
		timeMUS.Size(region.UpdatedAt)
}

func (regionMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = stringsMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	for i := 0; i < 2; i++ {
		if n1, err = timeMUS.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}
