// Package wire holds the transmissible shape of API access methods. The
// types mirror the management interface schema: optional message fields are
// pointers, the access method oneof is an interface field whose nil value
// means no case is set, and every Get accessor is safe on a nil receiver.
package wire

// UUID carries an access method id in its textual form.
type UUID struct {
	Value string `yaml:"value"`
}

func (x *UUID) GetValue() string {
	if x == nil {
		return ""
	}
	return x.Value
}

// AccessMethodCase is implemented by the oneof cases of AccessMethod:
// *Direct, *Bridges, *Socks5Local, *Socks5Remote and *Shadowsocks.
type AccessMethodCase interface {
	isAccessMethodCase()
}

// AccessMethod is the oneof wrapper. Method is nil when no case is set.
type AccessMethod struct {
	Method AccessMethodCase
}

func (x *AccessMethod) GetMethod() AccessMethodCase {
	if x == nil {
		return nil
	}
	return x.Method
}

func (x *AccessMethod) GetDirect() *Direct {
	c, _ := x.GetMethod().(*Direct)
	return c
}

func (x *AccessMethod) GetBridges() *Bridges {
	c, _ := x.GetMethod().(*Bridges)
	return c
}

func (x *AccessMethod) GetSocks5Local() *Socks5Local {
	c, _ := x.GetMethod().(*Socks5Local)
	return c
}

func (x *AccessMethod) GetSocks5Remote() *Socks5Remote {
	c, _ := x.GetMethod().(*Socks5Remote)
	return c
}

func (x *AccessMethod) GetShadowsocks() *Shadowsocks {
	c, _ := x.GetMethod().(*Shadowsocks)
	return c
}

type Direct struct{}

type Bridges struct{}

type Socks5Local struct {
	IP        string `yaml:"ip"`
	Port      uint32 `yaml:"port"`
	LocalPort uint32 `yaml:"local_port"`
}

type Socks5Remote struct {
	IP   string `yaml:"ip"`
	Port uint32 `yaml:"port"`
}

type Shadowsocks struct {
	IP       string `yaml:"ip"`
	Port     uint32 `yaml:"port"`
	Cipher   string `yaml:"cipher"`
	Password string `yaml:"password"`
}

func (*Direct) isAccessMethodCase()       {}
func (*Bridges) isAccessMethodCase()      {}
func (*Socks5Local) isAccessMethodCase()  {}
func (*Socks5Remote) isAccessMethodCase() {}
func (*Shadowsocks) isAccessMethodCase()  {}

// APIAccessMethod is a single access method setting.
type APIAccessMethod struct {
	ID           *UUID         `yaml:"id,omitempty"`
	Name         string        `yaml:"name"`
	Enabled      bool          `yaml:"enabled"`
	AccessMethod *AccessMethod `yaml:"access_method,omitempty"`
}

func (x *APIAccessMethod) GetID() *UUID {
	if x == nil {
		return nil
	}
	return x.ID
}

func (x *APIAccessMethod) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *APIAccessMethod) GetEnabled() bool {
	if x == nil {
		return false
	}
	return x.Enabled
}

func (x *APIAccessMethod) GetAccessMethod() *AccessMethod {
	if x == nil {
		return nil
	}
	return x.AccessMethod
}

// APIAccessMethods is a plain list of access methods.
type APIAccessMethods struct {
	APIAccessMethods []*APIAccessMethod `yaml:"api_access_methods"`
}

func (x *APIAccessMethods) GetAPIAccessMethods() []*APIAccessMethod {
	if x == nil {
		return nil
	}
	return x.APIAccessMethods
}

// APIAccessMethodSettings is the access method section of the settings.
type APIAccessMethodSettings struct {
	APIAccessMethods []*APIAccessMethod `yaml:"api_access_methods"`
}

func (x *APIAccessMethodSettings) GetAPIAccessMethods() []*APIAccessMethod {
	if x == nil {
		return nil
	}
	return x.APIAccessMethods
}

// APIAccessMethodUpdate replaces the method of the setting with ID.
type APIAccessMethodUpdate struct {
	ID           *UUID            `yaml:"id,omitempty"`
	AccessMethod *APIAccessMethod `yaml:"access_method,omitempty"`
}

func (x *APIAccessMethodUpdate) GetID() *UUID {
	if x == nil {
		return nil
	}
	return x.ID
}

func (x *APIAccessMethodUpdate) GetAccessMethod() *APIAccessMethod {
	if x == nil {
		return nil
	}
	return x.AccessMethod
}
