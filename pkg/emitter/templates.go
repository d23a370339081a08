package emitter

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// The rendered code is full of "{{", so templates use [[ ]] as delimiters.

const reactAggregatorTemplate = `import type { FC } from 'react';
import type { Icons } from './Icons';

import cn from 'classnames';
import s from './Icon.module.scss';

[[ join "\n" .Imports ]]

const icons: {[key in Icons]: () => JSX.Element} = {
[[ join "\n" .Entries ]]
};

interface Props {
  icon: Icons;
  color?: string;
  size?: number;
  id?: string;
  className?: string;
}

export const Icon: FC<Props> = ({
  icon,
  color,
  size = 16,
  id,
  className,
}) => {
  const SvgIcon = icons[icon];
  return (
    <div
      className={cn(
        s.icon,
        color && s.isFlat,
        color && s[icon],
        className && className
      )}
      style={{
        ['--icon-size' as string]: size,
        backgroundColor: color ? color : 'transparent'
      }}
      id={id}
    >
      {!color && <SvgIcon />}
    </div>
  );
};
`

const astroAggregatorTemplate = `---
import type { Icons } from './Icons';

[[ join "\n" .Imports ]]

interface Props {
  icon: Icons;
  color?: string;
  size?: number;
  id?: string;
  class?: string;
}

const { icon, color, size = 16, id, class: className, ...rest } = Astro.props;

const icons: {[key in Icons]: any} = {
[[ join "\n" .Entries ]]
};

const Component = icons[icon];
---

<div
  class:list={[
    'icon',
    {
      isFlat: color,
      [icon]: color,
    },
    className
  ]}
  {...rest}
  style={{
    ['--icon-size' as string]: size,
    backgroundColor: color ? color : 'transparent'
  }}
  id={id}
>
  {!color && <Component />}
</div>

<style lang="scss">
[[ .Styles ]]
</style>
`

var (
	reactAggregator = newTemplate("react-aggregator", reactAggregatorTemplate)
	astroAggregator = newTemplate("astro-aggregator", astroAggregatorTemplate)
)

func newTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).
		Delims("[[", "]]").
		Funcs(sprig.TxtFuncMap()).
		Parse(text))
}

// aggregatorData feeds the aggregator templates
type aggregatorData struct {
	Imports []string
	Entries []string
	Styles  string
}

func render(t *template.Template, data aggregatorData) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return sb.String(), nil
}
