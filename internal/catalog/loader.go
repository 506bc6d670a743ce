package catalog

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/churro-storefront/internal/catalog/data"
)

// Load decodes the embedded data files into a Catalog. The three documents
// are independent, so they decode concurrently.
func Load() (*Catalog, error) {
	var c Catalog

	var g errgroup.Group
	g.Go(func() error {
		items, err := decodeMenu(data.Menu)
		if err != nil {
			return errors.Wrap(err, "decode menu")
		}
		c.Items = items
		return nil
	})
	g.Go(func() error {
		locations, err := decodeLocations(data.Locations)
		if err != nil {
			return errors.Wrap(err, "decode locations")
		}
		c.Locations = locations
		return nil
	})
	g.Go(func() error {
		offers, err := decodeOffers(data.Offers)
		if err != nil {
			return errors.Wrap(err, "decode offers")
		}
		c.Offers = offers
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(c.Locations) == 0 {
		return nil, errors.New("no locations in data")
	}

	return &c, nil
}

func decodeMenu(raw []byte) ([]MenuItem, error) {
	var items []MenuItem

	d := jx.DecodeBytes(raw)
	if err := d.Arr(func(d *jx.Decoder) error {
		item, err := decodeMenuItem(d)
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	}); err != nil {
		return nil, err
	}

	return items, nil
}

func decodeMenuItem(d *jx.Decoder) (MenuItem, error) {
	var item MenuItem
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		switch key {
		case "id":
			item.ID, err = d.Str()
		case "name":
			item.Name, err = d.Str()
		case "description":
			item.Description, err = d.Str()
		case "price":
			item.Price, err = decodePrice(d)
		case "image":
			item.Image, err = d.Str()
		case "category":
			item.Category, err = d.Str()
		case "isVeg":
			item.IsVeg, err = d.Bool()
		case "isNew":
			item.IsNew, err = d.Bool()
		case "isBestseller":
			item.IsBestseller, err = d.Bool()
		case "isExclusive":
			item.IsExclusive, err = d.Bool()
		case "rating":
			item.Rating, err = d.Float64()
		case "availability":
			item.Availability, err = decodeStrings(d)
		case "remainingStock":
			item.RemainingStock, err = d.Int()
		case "ingredients":
			item.Ingredients, err = decodeStrings(d)
		case "macros":
			item.Macros, err = decodeMacros(d)
		case "images":
			item.Images, err = decodeStrings(d)
		case "variants":
			item.Variants, err = decodeVariants(d)
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return MenuItem{}, errors.Wrapf(err, "item %q", item.ID)
	}
	return item, nil
}

func decodeLocations(raw []byte) ([]Location, error) {
	var locations []Location

	d := jx.DecodeBytes(raw)
	if err := d.Arr(func(d *jx.Decoder) error {
		var loc Location
		if err := d.Obj(func(d *jx.Decoder, key string) (err error) {
			switch key {
			case "id":
				loc.ID, err = d.Str()
			case "name":
				loc.Name, err = d.Str()
			case "address":
				loc.Address, err = d.Str()
			case "timings":
				loc.Timings, err = d.Str()
			case "default":
				loc.Default, err = d.Bool()
			default:
				err = d.Skip()
			}
			return err
		}); err != nil {
			return errors.Wrapf(err, "location %q", loc.ID)
		}
		locations = append(locations, loc)
		return nil
	}); err != nil {
		return nil, err
	}

	return locations, nil
}

func decodeOffers(raw []byte) ([]Offer, error) {
	var offers []Offer

	d := jx.DecodeBytes(raw)
	if err := d.Arr(func(d *jx.Decoder) error {
		var o Offer
		if err := d.Obj(func(d *jx.Decoder, key string) (err error) {
			switch key {
			case "id":
				o.ID, err = d.Str()
			case "title":
				o.Title, err = d.Str()
			case "description":
				o.Description, err = d.Str()
			case "image":
				o.Image, err = d.Str()
			case "badge":
				o.Badge, err = d.Str()
			case "linkedItem":
				o.LinkedItem, err = d.Str()
			case "code":
				o.Code, err = d.Str()
			default:
				err = d.Skip()
			}
			return err
		}); err != nil {
			return errors.Wrapf(err, "offer %q", o.ID)
		}
		offers = append(offers, o)
		return nil
	}); err != nil {
		return nil, err
	}

	return offers, nil
}

func decodeVariants(d *jx.Decoder) ([]Variant, error) {
	var variants []Variant
	err := d.Arr(func(d *jx.Decoder) error {
		var v Variant
		if err := d.Obj(func(d *jx.Decoder, key string) (err error) {
			switch key {
			case "name":
				v.Name, err = d.Str()
			case "price":
				v.Price, err = decodePrice(d)
			default:
				err = d.Skip()
			}
			return err
		}); err != nil {
			return err
		}
		variants = append(variants, v)
		return nil
	})
	return variants, err
}

func decodeMacros(d *jx.Decoder) (*Macros, error) {
	var m Macros
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		switch key {
		case "calories":
			m.Calories, err = d.Int()
		case "protein":
			m.Protein, err = d.Int()
		case "carbs":
			m.Carbs, err = d.Int()
		case "fat":
			m.Fat, err = d.Int()
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	var out []string
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	return out, err
}

// decodePrice reads a whole-currency-unit JSON number as a decimal.
func decodePrice(d *jx.Decoder) (decimal.Decimal, error) {
	n, err := d.Int64()
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(n), nil
}
