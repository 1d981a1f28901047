package domain

// ProfileUpdate lists every profile attribute a user may edit. Nil fields
// are left unchanged.
type ProfileUpdate struct {
	Specialty      *string
	SubSpecialties *string
	Region         *string
	City           *string
	Hospitals      *string
	Languages      *string
	Availability   *string
	Bio            *string
}

// IsEmpty reports whether the update touches no field.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Specialty == nil &&
		p.SubSpecialties == nil &&
		p.Region == nil &&
		p.City == nil &&
		p.Hospitals == nil &&
		p.Languages == nil &&
		p.Availability == nil &&
		p.Bio == nil
}

// Apply merges p into u and returns the result.
func (p ProfileUpdate) Apply(u User) User {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&u.Specialty, p.Specialty)
	set(&u.SubSpecialties, p.SubSpecialties)
	set(&u.Region, p.Region)
	set(&u.City, p.City)
	set(&u.Hospitals, p.Hospitals)
	set(&u.Languages, p.Languages)
	set(&u.Availability, p.Availability)
	set(&u.Bio, p.Bio)
	return u
}
