package testimonial

const saveView = `<div><blockquote>
{% if content %}<p class="testimonial-text-container"><i class="fa fa-quote-left pull-left" aria-hidden="true"></i><span class="testimonial-text">{{ content|safe }}</span><i class="fa fa-quote-right pull-right" aria-hidden="true"></i></p>{% endif %}
<div class="testimonial-author-container">
{% if author %}<p class="testimonial-author-name"><span class="testimonial-author">- {{ author|safe }}</span></p>{% endif %}
{% if link %}<p class="testimonial-author-link"><a target="_blank" href="{{ link|safe }}"><i class="fas fa-user"></i><span class="testimonial-author-link">{{ link|safe }}</span></a></p>{% endif %}
</div>
</blockquote></div>`

const editView = `<div class="{{ class_names(wrapper_class) }}">
<p>{{ t(locale, "testimonial.insert") }}</p>
<blockquote class="wp-block-quote">
{{ content_input|safe }}
{{ author_input|safe }}
{{ link_input|safe }}
</blockquote>
</div>`
